package errors

import (
	stderrors "errors"
	"fmt"
)

// StatusError wraps an HTTP or network failure with the server's payload and
// a retry category. StatusCode is 0 for network-level failures.
type StatusError struct {
	Category   ErrorCategory
	StatusCode int
	Body       string // response body, surfaced to the caller for diagnosis
	Operation  string // query type that failed, e.g. "Lookup"
	Underlying error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *StatusError) Unwrap() error { return e.Underlying }

// NewHTTPError builds a classified error for a non-success HTTP status.
func NewHTTPError(statusCode int, body, operation string) *StatusError {
	return &StatusError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Operation:  operation,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError builds a classified error for a network-level failure.
// Network errors are always recoverable; they may be transient.
func NewNetworkError(operation string, err error) *StatusError {
	return &StatusError{
		Category:   Recoverable,
		Operation:  operation,
		Underlying: err,
	}
}

// categoryFor maps HTTP status codes to retry categories: 4xx is
// irrecoverable except 408 and 429, 5xx and everything unexpected is
// recoverable.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Category == Irrecoverable
	}
	return false
}
