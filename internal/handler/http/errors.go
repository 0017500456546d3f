package http

import "errors"

// Sentinel errors used by the session-guard middleware when extracting the
// token from the request. Callers can match against them with [errors.Is].
var (
	// ErrMissingAuthToken is returned when the request carries neither the
	// session cookie nor an "Authorization" header.
	ErrMissingAuthToken = errors.New("missing authentication token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty authentication token")
)
