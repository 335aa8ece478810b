package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request body fails
	// service-level validation (missing type, empty name, bad shape).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotAllowedToRegister is returned when registration is attempted
	// with an email outside the configured allow-list.
	ErrNotAllowedToRegister = errors.New("registration not allowed for this email")

	// ErrWrongPassword is returned when the supplied master password hash
	// does not match the stored credential.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpired is returned when an otherwise well-formed token has
	// passed its expiry.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrEncodingPayload is returned when an opaque payload cannot be
	// serialized for storage.
	ErrEncodingPayload = errors.New("error encoding payload")
)
