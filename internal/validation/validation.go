// Package validation turns validator struct-tag failures into field-keyed
// user messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Messages maps "field.tag" or "field" to the text shown for that failure.
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return "입력값을 확인해주세요."
}

// Struct validates s and returns one message per failing field, or nil.
func Struct(s any, messages Messages) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = messages.lookup(fe.Field(), fe.Tag())
	}
	return fields
}

// Error carries field messages out of a service that validates before any
// network call.
type Error struct {
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Check validates s and returns *Error with message when any field fails.
func Check(s any, message string, messages Messages) error {
	fields := Struct(s, messages)
	if fields == nil {
		return nil
	}
	return &Error{Message: message, Fields: fields}
}

// Var reports whether v satisfies tag, for values that are not struct fields.
func Var(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}
