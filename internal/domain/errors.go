package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")
)

// LookupError represents a failure to list refs for a repository
type LookupError struct {
	Repo string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ref lookup failed for %s: %v", e.Repo, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError creates a new LookupError
func NewLookupError(repo string, err error) *LookupError {
	return &LookupError{Repo: repo, Err: err}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	// Ref lookups fail mostly for transient network reasons; retry them
	// unless the caller gave up.
	var lookup *LookupError
	if errors.As(err, &lookup) {
		return !errors.Is(lookup.Err, context.Canceled)
	}

	return errors.Is(err, ErrTimeout)
}
