package cache

import (
	"errors"
	"fmt"
)

// CacheError wraps a failed cache operation. It never reaches callers of
// the query engine; the repositories downgrade it to a miss or a no-op.
// Retryable marks failures tied to the cached payload itself (a corrupt
// or unreadable entry) rather than the connection; re-resolving and
// re-populating clears them.
type CacheError struct {
	Operation string
	Err       error
	Retryable bool
}

func NewCacheError(operation string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Err:       err,
		Retryable: retryable,
	}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache operation %s failed: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a cache failure that a fresh
// store read and re-population will clear.
func IsRetryable(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr) && cacheErr.Retryable
}
