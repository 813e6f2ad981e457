package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider calls.
var (
	ErrNotFound     = errors.New("tmdb: not found")
	ErrUpstream     = errors.New("tmdb: upstream error")
	ErrMalformed    = errors.New("tmdb: malformed payload")
	ErrInvalidQuery = errors.New("tmdb: invalid listing query")
)

// Error wraps a failed provider call with the operation and HTTP status.
type Error struct {
	Op         string // "details", "credits", "listing:popular", ...
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode extracts the provider HTTP status from err, 0 when there is none.
func StatusCode(err error) int {
	var tmdbErr *Error
	if errors.As(err, &tmdbErr) {
		return tmdbErr.StatusCode
	}
	return 0
}
