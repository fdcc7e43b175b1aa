package sentinel

import "errors"

// Sentinel dependency errors. Backends and sources return these (optionally wrapped)
// so the adapter can translate them into domain errors exactly once.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnavailable    = errors.New("unavailable")
	ErrClosed         = errors.New("closed")
	ErrNotInitialized = errors.New("not initialized")
)
