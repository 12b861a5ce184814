// Package errors defines the typed failures of the aspect-lock module and
// the helpers that collapse them to the boolean boundary the host sees.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies install/attach failures
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeWindowNotFound
	ErrCodeAttachFailure
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrCodeWindowNotFound:
		return "WINDOW_NOT_FOUND"
	case ErrCodeAttachFailure:
		return "ATTACH_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// LockError represents an aspect-lock failure with classification and context
type LockError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *LockError) Error() string {
	// Guard against nil receiver
	if e == nil {
		return "aspect lock error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Add context with deterministic order
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "aspect lock error" + contextStr
}

func (e *LockError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *LockError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*LockError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *LockError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *LockError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *LockError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// All lock operations run on the host UI thread, so no synchronization is
// needed here.
func (e *LockError) WithContext(key, value string) *LockError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewLockError creates a new lock error with the given parameters
func NewLockError(op string, err error, code ErrorCode) *LockError {
	return &LockError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewLockErrorWithContext creates a new lock error with additional context
func NewLockErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *LockError {
	lockErr := NewLockError(op, err, code)
	if context != nil {
		// Clone the context map to avoid external mutation
		lockErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			lockErr.Context[k] = v
		}
	}
	return lockErr
}

// Classify extracts the error code from an error chain. Unclassified errors
// report ErrCodeUnknown.
func Classify(err error) ErrorCode {
	var lockErr *LockError
	if errors.As(err, &lockErr) && lockErr != nil {
		return lockErr.Code
	}
	return ErrCodeUnknown
}

// IsRetryable reports whether re-invoking the failed operation later can
// succeed without any other change. Only WindowNotFound qualifies: the host
// window may simply not exist yet. The module itself never retries; this is
// for the caller's retry policy.
func IsRetryable(err error) bool {
	return Classify(err) == ErrCodeWindowNotFound
}
