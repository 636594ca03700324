package schemas

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/flameshq/flames/internal/validation"
)

// Kind is the JSON type of a field
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Field is the machine readable description of one model field
type Field struct {
	Name        string      `json:"name" yaml:"name"`
	Type        Kind        `json:"type" yaml:"type"`
	Format      string      `json:"format,omitempty" yaml:"format,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required" yaml:"required"`
	Nullable    bool        `json:"nullable" yaml:"nullable"`
	Default     interface{} `json:"default,omitempty" yaml:"default,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength   *int        `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength   *int        `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Enum        []string    `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// HasDefault reports whether an omitted value is filled in
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// parseFields reads field metadata from the tags of an input model struct.
// Every serialized field must be a pointer so absence can be told apart
// from a zero value.
func parseFields(t reflect.Type) ([]Field, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model %s is not a struct", t)
	}
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := validation.JSONName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		f, err := parseField(name, sf)
		if err != nil {
			return nil, fmt.Errorf("model %s field %s: %w", t.Name(), sf.Name, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(name string, sf reflect.StructField) (Field, error) {
	f := Field{Name: name, Description: sf.Tag.Get("desc")}
	if sf.Type.Kind() != reflect.Ptr {
		return f, fmt.Errorf("type %s must be a pointer", sf.Type)
	}
	switch sf.Type.Elem().Kind() {
	case reflect.String:
		f.Type = KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.Type = KindInteger
	case reflect.Float32, reflect.Float64:
		f.Type = KindNumber
	case reflect.Bool:
		f.Type = KindBoolean
	default:
		return f, fmt.Errorf("unsupported type %s", sf.Type)
	}

	for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
		tag, param, _ := strings.Cut(strings.TrimSpace(rule), "=")
		switch tag {
		case "", "omitempty":
		case "required":
			f.Required = true
		case "email":
			f.Format = "email"
		case "oneof":
			f.Enum = validation.SplitOneOf(param)
		case "min", "gte", "max", "lte":
			if err := f.setBound(tag, param); err != nil {
				return f, err
			}
		default:
			return f, fmt.Errorf("unsupported rule %q", tag)
		}
	}

	if def, ok := sf.Tag.Lookup("default"); ok {
		v, err := parseDefault(f.Type, def)
		if err != nil {
			return f, fmt.Errorf("default %q: %w", def, err)
		}
		f.Default = v
	}
	f.Nullable = !f.Required && !f.HasDefault()
	return f, nil
}

func (f *Field) setBound(tag, param string) error {
	lower := tag == "min" || tag == "gte"
	if f.Type == KindString {
		n, err := strconv.Atoi(param)
		if err != nil {
			return fmt.Errorf("%s=%s: %w", tag, param, err)
		}
		if lower {
			f.MinLength = &n
		} else {
			f.MaxLength = &n
		}
		return nil
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fmt.Errorf("%s=%s: %w", tag, param, err)
	}
	if lower {
		f.Minimum = &v
	} else {
		f.Maximum = &v
	}
	return nil
}

func parseDefault(kind Kind, s string) (interface{}, error) {
	switch kind {
	case KindBoolean:
		return strconv.ParseBool(s)
	case KindInteger:
		return strconv.ParseInt(s, 10, 64)
	case KindNumber:
		return strconv.ParseFloat(s, 64)
	default:
		return s, nil
	}
}
