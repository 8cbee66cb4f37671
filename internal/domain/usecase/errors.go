package usecase

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")

	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrProjectNotFound = errors.New("project not found")
	ErrNotAssigned     = errors.New("user is not assigned to project")
)
