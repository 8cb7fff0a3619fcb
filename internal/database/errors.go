package database

import "errors"

// Validation errors returned by the record constructors. Compare with
// errors.Is.
var (
	// ErrInvalidID means an id field is zero or negative where a
	// server-assigned positive id is required.
	ErrInvalidID = errors.New("database: id must be a positive integer")

	// ErrEmptyContent means a quote has no content text.
	ErrEmptyContent = errors.New("database: quote content must not be empty")

	// ErrEmptyName means an author has no name.
	ErrEmptyName = errors.New("database: author name must not be empty")

	// ErrInvalidBirthDate means an author's birth date is unset.
	ErrInvalidBirthDate = errors.New("database: author birth date must be set")

	// ErrEmptyTitle means a comment has no title.
	ErrEmptyTitle = errors.New("database: comment title must not be empty")

	// ErrInvalidEmail means a comment's user email does not parse as a plain
	// address.
	ErrInvalidEmail = errors.New("database: user email is not a valid address")

	// ErrEmptyKeyName means a metadata row has no lookup key.
	ErrEmptyKeyName = errors.New("database: metadata key name must not be empty")

	// ErrUnknownTable means a provisioning call named a table outside the
	// managed schema.
	ErrUnknownTable = errors.New("database: unknown table")
)
