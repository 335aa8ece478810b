package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrServerUnavailable is returned for any non-2xx response other than
	// an authorization failure.
	ErrServerUnavailable = errors.New("server unavailable")
)
