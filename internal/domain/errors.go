package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrBookingConflict = errors.New("booking overlaps an existing booking")
)

var (
	ErrIDTaken       = errors.New("id is already taken")
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
