package llm

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable means the backend handle could not be constructed at startup.
var ErrBackendUnavailable = errors.New("backend unavailable")

// InvocationError indicates the backend call itself failed.
type InvocationError struct {
	ModelID string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.ModelID, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the backend answered but the expected
// text field was absent or empty.
type MalformedResponseError struct {
	Contract string
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s response: %s: %v", e.Contract, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Contract, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Kind names the failure category of err for logs and metrics.
func Kind(err error) string {
	var invErr *InvocationError
	var malErr *MalformedResponseError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBackendUnavailable):
		return "unavailable"
	case errors.As(err, &malErr):
		return "malformed_response"
	case errors.As(err, &invErr):
		return "invocation"
	default:
		return "unknown"
	}
}
