package store

import (
	"errors"
	"strings"
)

// ErrNotFound indicates the requested record does not exist
var ErrNotFound = errors.New("not found")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is matches any *criticalError so a single sentinel can terminate retries
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// errCritical is the terminal sentinel passed to retriers
var errCritical = &criticalError{err: errors.New("critical")}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
