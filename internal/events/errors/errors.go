package errors

import "errors"

var (
	ErrNotFound = errors.New("event not found")

	ErrInvalidID = errors.New("invalid event ID format")

	ErrInvalidSlug = errors.New("slug may only contain lowercase letters, numbers, and hyphens")

	ErrDuplicateSlug = errors.New("an event with this slug already exists")
)
