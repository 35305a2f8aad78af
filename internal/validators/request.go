package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [RequestValidator.Validate] to scope validation.
const (
	FieldUsername    = "Username"
	FieldPassword    = "Password"
	FieldEmail       = "Email"
	FieldTitle       = "Title"
	FieldDescription = "Description"
)

// fieldErrors maps a struct field name to the sentinel reported for it.
var fieldErrors = map[string]error{
	FieldUsername:    ErrInvalidUsername,
	FieldPassword:    ErrInvalidPassword,
	FieldEmail:       ErrInvalidEmail,
	FieldTitle:       ErrInvalidTitle,
	FieldDescription: ErrInvalidDescription,
}

// RequestValidator validates inbound auth and task requests using the
// `validate` struct tags declared in package models, plus rules tags
// cannot express (a title made only of whitespace is empty).
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.CreateTaskRequest:
		return v.validateCreateTask(ctx, value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreateTask(ctx, *value, fields...)

	case models.UpdateTaskRequest:
		return v.validateUpdateTask(ctx, value, fields...)
	case *models.UpdateTaskRequest:
		return v.validateUpdateTask(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCreateTask(ctx context.Context, req models.CreateTaskRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		return err
	}

	if inScope(FieldTitle, fields) && strings.TrimSpace(req.Title) == "" {
		return ErrInvalidTitle
	}

	return nil
}

func (v *RequestValidator) validateUpdateTask(ctx context.Context, req models.UpdateTaskRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		return err
	}

	if inScope(FieldTitle, fields) && req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrInvalidTitle
	}

	return nil
}

// validateStruct runs tag validation over obj, over only the named fields
// when any are given, and translates the first failure into a sentinel.
func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if _, ok := fieldErrors[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	if sentinel, ok := fieldErrors[first.StructField()]; ok {
		return fmt.Errorf("%w: failed on %q", sentinel, first.Tag())
	}

	return first
}

func inScope(field string, fields []string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}
