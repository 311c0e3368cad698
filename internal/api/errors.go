package api

import "errors"

var (
	ErrUnavailable  = errors.New("service unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrFetchFailed  = errors.New("fetch failed")
)
