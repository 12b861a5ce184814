package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeInvalidArgument, "INVALID_ARGUMENT"},
		{ErrCodeWindowNotFound, "WINDOW_NOT_FOUND"},
		{ErrCodeAttachFailure, "ATTACH_FAILURE"},
		{ErrCodeUnknown, "UNKNOWN"},
		{ErrorCode(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.String(); got != tt.expected {
				t.Errorf("ErrorCode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLockError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *LockError
		contains []string
	}{
		{
			name: "basic error",
			err: &LockError{
				Op:   "install",
				Err:  errors.New("no eligible window"),
				Code: ErrCodeWindowNotFound,
			},
			contains: []string{"no eligible window", "op=install", "code=WINDOW_NOT_FOUND"},
		},
		{
			name: "error with context",
			err: &LockError{
				Op:   "install",
				Err:  errors.New("bad ratio"),
				Code: ErrCodeInvalidArgument,
				Context: map[string]string{
					"aspect_width":  "0",
					"aspect_height": "9",
				},
			},
			contains: []string{"bad ratio", "op=install", "code=INVALID_ARGUMENT", "aspect_width=0", "aspect_height=9"},
		},
		{
			name:     "nil underlying error",
			err:      &LockError{Op: "attach", Code: ErrCodeAttachFailure},
			contains: []string{"aspect lock error", "op=attach", "code=ATTACH_FAILURE"},
		},
		{
			name:     "nil receiver",
			err:      nil,
			contains: []string{"aspect lock error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(errStr, want) {
					t.Errorf("LockError.Error() = %q, missing %q", errStr, want)
				}
			}
		})
	}
}

func TestLockError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewLockError("install", inner, ErrCodeAttachFailure)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find wrapped error")
	}
	if err.Unwrap() != inner {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), inner)
	}

	var nilErr *LockError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap() on nil receiver should return nil")
	}
}

func TestLockError_Is(t *testing.T) {
	err := NewLockError("install", errors.New("boom"), ErrCodeWindowNotFound)

	if !errors.Is(err, &LockError{Code: ErrCodeWindowNotFound}) {
		t.Error("errors.Is should match LockError with identical code")
	}
	if errors.Is(err, &LockError{Code: ErrCodeAttachFailure}) {
		t.Error("errors.Is should not match LockError with different code")
	}
}

func TestLockError_WithContext(t *testing.T) {
	err := NewLockError("install", errors.New("boom"), ErrCodeAttachFailure).
		WithContext("window", "0x1234")

	if got := err.GetContext()["window"]; got != "0x1234" {
		t.Errorf("GetContext()[window] = %q, want %q", got, "0x1234")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct lock error",
			err:  NewLockError("install", errors.New("boom"), ErrCodeInvalidArgument),
			want: ErrCodeInvalidArgument,
		},
		{
			name: "wrapped lock error",
			err:  fmt.Errorf("outer: %w", NewLockError("install", errors.New("boom"), ErrCodeAttachFailure)),
			want: ErrCodeAttachFailure,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: ErrCodeUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"window not found is retryable", NewLockError("install", errors.New("no window"), ErrCodeWindowNotFound), true},
		{"invalid argument is not", NewLockError("install", errors.New("bad"), ErrCodeInvalidArgument), false},
		{"attach failure is not", NewLockError("install", errors.New("bad"), ErrCodeAttachFailure), false},
		{"plain error is not", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
