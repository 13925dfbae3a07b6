// pkg/memquery/errors.go
package memquery

import "errors"

var (
	// ErrProcessUnavailable is returned when the process exited or its handle is unusable
	ErrProcessUnavailable = errors.New("process unavailable")

	// ErrAccessDenied is returned when the caller lacks the rights to query the process
	ErrAccessDenied = errors.New("access denied")

	// ErrQueryFailed is returned when an introspection call fails unexpectedly
	ErrQueryFailed = errors.New("query failed")

	// ErrEnumerationFailed is returned when the process list cannot be obtained
	ErrEnumerationFailed = errors.New("process enumeration failed")

	// ErrUnsupportedPlatform is returned by backends on operating systems they do not support
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidWorkers is returned when the worker count is negative
	ErrInvalidWorkers = errors.New("workers must be zero (auto) or positive")

	// ErrInvalidUpperBound is returned when the address space bound is not page aligned
	ErrInvalidUpperBound = errors.New("upper bound must be a non-zero multiple of the page size")
)

// IsExpected reports whether err only means the process cannot be looked at,
// as opposed to a failure while looking at it.
func IsExpected(err error) bool {
	return errors.Is(err, ErrProcessUnavailable) || errors.Is(err, ErrAccessDenied)
}
