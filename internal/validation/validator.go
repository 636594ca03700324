package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Engine checks struct tag rules and reports failures by json field name
type Engine struct {
	validate *validator.Validate
}

func New() *Engine {
	v := validator.New()
	v.RegisterTagNameFunc(JSONName)
	return &Engine{validate: v}
}

// JSONName returns the json name of fld, or "" when the field is not serialized
func JSONName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Struct validates s. A rule failure is returned as Errors; any other error
// means s could not be validated at all.
func (e *Engine) Struct(s interface{}) error {
	err := e.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: Message(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}
	return out
}
