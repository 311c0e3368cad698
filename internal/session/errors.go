package session

import "errors"

var (
	// ErrNoSession: no credential token is stored. No network call is made.
	ErrNoSession = errors.New("no stored session")

	// ErrMalformedToken: the stored token fails structural decoding.
	ErrMalformedToken = errors.New("malformed credential token")

	// ErrSessionInvalid: the token decoded but the service rejected it, or the
	// profile response lacked the required identity field.
	ErrSessionInvalid = errors.New("session rejected by service")
)
