package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// Rules reported in FieldError.Rule besides the validator tags themselves
const (
	RuleRequired = "required"
	RuleNull     = "null"
	RuleType     = "type"
)

// FieldError describes one field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Errors is the list of field failures for one document
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in report order
func (e Errors) Fields() []string {
	names := make([]string, 0, len(e))
	for _, fe := range e {
		names = append(names, fe.Field)
	}
	return names
}

// For returns the first error reported for field
func (e Errors) For(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

func (e Errors) Has(field string) bool {
	_, ok := e.For(field)
	return ok
}

// Message renders a human readable reason for rule. kind is the kind of the
// checked value and selects between length and numeric wording.
func Message(rule, param string, kind reflect.Kind) string {
	switch rule {
	case RuleRequired:
		return "field required"
	case RuleNull:
		return "must not be null"
	case RuleType:
		return fmt.Sprintf("must be a valid %s", param)
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(SplitOneOf(param), ", "))
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "lt":
		return fmt.Sprintf("must be less than %s", param)
	default:
		return fmt.Sprintf("failed on %s", rule)
	}
}

// SplitOneOf splits a oneof parameter, honouring single-quoted values that
// contain spaces ('Law Firm').
func SplitOneOf(param string) []string {
	var (
		values []string
		cur    strings.Builder
		quoted bool
		hasCur bool
	)
	flush := func() {
		if hasCur {
			values = append(values, cur.String())
		}
		cur.Reset()
		hasCur = false
	}
	for _, r := range param {
		switch {
		case r == '\'':
			if quoted {
				flush()
			}
			quoted = !quoted
			if quoted {
				hasCur = true
			}
		case r == ' ' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
			hasCur = true
		}
	}
	flush()
	return values
}
