// Package validation runs declarative per-endpoint rule sets over request
// bodies. Rules live in `validate` struct tags; a RuleSet supplies the
// client-facing message for each field and rule.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"lexcase/internal/core/apperr"
)

// DateLayout is the calendar-date form accepted for date fields.
const DateLayout = "2006-01-02"

// RuleSet names an endpoint's rules and carries their messages. Messages are
// keyed "field.rule" (e.g. "password.min"); "field.*" is the field fallback
// and "field.type" is used when the JSON value has the wrong type.
type RuleSet struct {
	Name     string
	Messages map[string]string
}

func (rs *RuleSet) message(field, rule, param string) string {
	if rs != nil {
		if m, ok := rs.Messages[field+"."+rule]; ok {
			return m
		}
		if m, ok := rs.Messages[field+".*"]; ok {
			return m
		}
	}
	switch rule {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, param)
	case "gte":
		return field + " cannot be negative"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return field + " must be a valid email address"
	case "isodate":
		return field + " must be in ISO format (YYYY-MM-DD)"
	case "type":
		return field + " has an invalid type"
	}
	return field + " is invalid"
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Struct checks in against its tags and reports every failing field.
func (x *Validator) Struct(in any, rs *RuleSet) error {
	err := x.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal("validation failed", err)
	}
	seen := map[string]bool{}
	details := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		details = append(details, apperr.FieldError{Field: field, Message: rs.message(field, fe.Tag(), fe.Param())})
	}
	return apperr.Validation(details)
}

// DecodeError classifies a JSON decoding failure for the given rule set.
func DecodeError(err error, rs *RuleSet) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := strings.SplitN(typeErr.Field, ".", 2)[0]
		return apperr.Validation([]apperr.FieldError{{Field: field, Message: rs.message(field, "type", "")}})
	}
	return apperr.Validation([]apperr.FieldError{{Field: "body", Message: "Invalid JSON body"}})
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// instant in UTC. Bare dates map to midnight UTC so the calendar date
// survives storage unchanged.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
