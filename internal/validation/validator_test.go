package validation

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
)

type signupPayload struct {
	Code   string  `json:"code" validate:"required,min=1,max=50"`
	Name   string  `json:"name" validate:"required,min=2,max=200"`
	Status string  `json:"status" validate:"omitempty,oneof=enabled disabled"`
	Score  *int    `json:"score" validate:"omitempty,gte=0,lte=10"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Secret string  `json:"-"`
}

func intPtr(v int) *int { return &v }

func TestEngineStruct(t *testing.T) {
	engine := New()
	bad := "nope"

	tests := []struct {
		name    string
		payload signupPayload
		fields  []string
		rules   []string
	}{
		{
			name:    "valid",
			payload: signupPayload{Code: "9", Name: "Acme", Status: "enabled", Score: intPtr(0)},
		},
		{
			name:    "missing required",
			payload: signupPayload{},
			fields:  []string{"code", "name"},
			rules:   []string{"required", "required"},
		},
		{
			name:    "bounds and enum",
			payload: signupPayload{Code: "9", Name: "C", Status: "paused", Score: intPtr(11), Email: &bad},
			fields:  []string{"name", "status", "score", "email"},
			rules:   []string{"min", "oneof", "lte", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Struct(&tt.payload)
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var fieldErrs Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("expected Errors, got %T %v", err, err)
			}
			if got := fieldErrs.Fields(); !reflect.DeepEqual(got, tt.fields) {
				t.Errorf("fields: expected %v, got %v", tt.fields, got)
			}
			for i, fe := range fieldErrs {
				if fe.Rule != tt.rules[i] {
					t.Errorf("%s: expected rule %s, got %s", fe.Field, tt.rules[i], fe.Rule)
				}
				if fe.Message == "" {
					t.Errorf("%s: empty message", fe.Field)
				}
			}
		})
	}
}

func TestEngineStructNonStruct(t *testing.T) {
	err := New().Struct(42)
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		t.Fatal("non-struct input must not be reported as field errors")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		rule, param string
		kind        reflect.Kind
		want        string
	}{
		{"min", "2", reflect.String, "must be at least 2 characters"},
		{"max", "2000", reflect.String, "must be at most 2000 characters"},
		{"min", "1", reflect.Int, "must be at least 1"},
		{"gte", "0", reflect.Int, "must be greater than or equal to 0"},
		{"lte", "120", reflect.Int, "must be less than or equal to 120"},
		{"oneof", "'Law Firm' Other", reflect.String, "must be one of: Law Firm, Other"},
		{"type", "integer", reflect.Invalid, "must be a valid integer"},
		{"required", "", reflect.Invalid, "field required"},
		{"uuid", "", reflect.String, "failed on uuid"},
	}
	for _, tt := range tests {
		if got := Message(tt.rule, tt.param, tt.kind); got != tt.want {
			t.Errorf("Message(%q, %q): expected %q, got %q", tt.rule, tt.param, tt.want, got)
		}
	}
}

func TestSplitOneOf(t *testing.T) {
	got := SplitOneOf("'Banking' 'Law Firm' Fintech  Corporate Other")
	want := []string{"Banking", "Law Firm", "Fintech", "Corporate", "Other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestErrorsHelpers(t *testing.T) {
	errs := Errors{
		{Field: "age", Rule: "lte", Param: "120", Message: "must be less than or equal to 120"},
		{Field: "name", Rule: "required", Message: "field required"},
	}
	if !errs.Has("age") || errs.Has("email") {
		t.Error("Has reported wrong membership")
	}
	if fe, ok := errs.For("name"); !ok || fe.Rule != "required" {
		t.Errorf("For(name) = %+v, %v", fe, ok)
	}
	want := "validation failed: age: must be less than or equal to 120; name: field required"
	if errs.Error() != want {
		t.Errorf("expected %q, got %q", want, errs.Error())
	}
}

func TestEchoValidator(t *testing.T) {
	e := echo.New()
	e.Validator = NewEchoValidator(nil)
	c := e.NewContext(nil, nil)

	if err := c.Validate(&signupPayload{Code: "9", Name: "Acme"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	err := c.Validate(&signupPayload{Code: "9"})
	he := HTTPError(err)
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	body, ok := he.Message.(ErrorResponse)
	if !ok {
		t.Fatalf("expected ErrorResponse message, got %T", he.Message)
	}
	if body.Error != "VALIDATION_ERROR" {
		t.Errorf("unexpected error code %q", body.Error)
	}
	details, ok := body.Details.(Errors)
	if !ok || !details.Has("name") {
		t.Errorf("expected details naming name, got %#v", body.Details)
	}
}

func TestHTTPErrorPassthrough(t *testing.T) {
	orig := echo.NewHTTPError(http.StatusUnsupportedMediaType, "bad media")
	if got := HTTPError(orig); got != orig {
		t.Errorf("expected echo error to pass through, got %v", got)
	}
	internal := HTTPError(errors.New("boom"))
	if internal.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", internal.Code)
	}
	if internal.Internal == nil {
		t.Error("expected internal error to be kept")
	}
}
