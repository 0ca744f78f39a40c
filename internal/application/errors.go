package application

import "errors"

var (
	ErrValidation          = errors.New("all fields are required")
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrTenderNotFound      = errors.New("tender not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrEmptyQuery          = errors.New("search query is required")
)
