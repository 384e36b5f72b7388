package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns validator output into a VALIDATION_ERROR naming each offending field.
func validationError(err error, entity string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", entity))
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
		fmt.Sprintf("invalid %s payload: %s", entity, strings.Join(msgs, "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "gt":
		return field + " must be positive"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// validateIgnoring validates req but drops failures on the named JSON fields, for payloads whose
// parent reference is only honoured on create.
func validateIgnoring(v *validator.Validate, req interface{}, entity string, ignored ...string) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validationError(err, entity)
	}
	kept := fieldErrs[:0:0]
	for _, fe := range fieldErrs {
		skip := false
		for _, name := range ignored {
			if fe.Field() == name {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, fe)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return validationError(kept, entity)
}
