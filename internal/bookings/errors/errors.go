package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrInvalidEmail = errors.New("invalid email address")

	ErrEventNotFound = errors.New("referenced event does not exist")
)
