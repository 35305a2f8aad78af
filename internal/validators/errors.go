package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername    = errors.New("username is required and must be at most 100 characters")
	ErrInvalidPassword    = errors.New("password is required and must be at most 256 characters")
	ErrInvalidEmail       = errors.New("email must be a valid address")
	ErrInvalidTitle       = errors.New("title is required and must be at most 200 characters")
	ErrInvalidDescription = errors.New("description must be at most 2000 characters")
)
