package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates an update or delete targeting an unknown record
var ErrNotFound = errors.New("not found")

// FetchError indicates a failure to retrieve or parse a remote feed.
// It is not retried automatically, retry is the caller's concern.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError indicates rejected input, checked before any side effect
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
