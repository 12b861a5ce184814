package errors

import (
	"context"
	"fmt"
	"time"
)

// RetryLogger defines the interface for logging retry operations
type RetryLogger interface {
	Printf(format string, v ...interface{})
}

// RetryConfig holds configuration for retry logic. The lock itself never
// retries; this exists for the host side of the boundary, which may loop
// Install until the window it wants to lock has been created.
type RetryConfig struct {
	MaxAttempts   int           // Maximum number of attempts
	InitialDelay  time.Duration // Initial delay between attempts
	MaxDelay      time.Duration // Maximum delay between attempts
	BackoffFactor float64       // Exponential backoff factor
}

// Package-level logger variable that can be set by callers
var retryLogger RetryLogger

// SetRetryLogger sets the package-level logger for retry operations
func SetRetryLogger(logger RetryLogger) {
	retryLogger = logger
}

// logRetryMessage logs a retry message using the configured logger
func logRetryMessage(format string, v ...interface{}) {
	if retryLogger != nil {
		retryLogger.Printf(format, v...)
	}
}

// DefaultRetryConfig returns a retry configuration with sensible defaults
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:   20,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 1.5,
	}
}

// RetryableOperation represents an operation that can be retried
type RetryableOperation func() error

// WithRetry executes operation until it succeeds, fails with a
// non-retryable error, runs out of attempts, or the context is cancelled.
// Only errors IsRetryable reports true for are retried.
func WithRetry(ctx context.Context, config *RetryConfig, operation RetryableOperation, operationName string) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			if attempt > 0 && operationName != "" {
				logRetryMessage("Operation '%s' succeeded after %d attempts", operationName, attempt+1)
			}
			return nil
		}

		lastErr = err

		if !IsRetryable(err) {
			if operationName != "" {
				logRetryMessage("Operation '%s' failed with non-retryable error: %v", operationName, err)
			}
			return err
		}

		// Don't sleep after the last attempt
		if attempt == config.MaxAttempts-1 {
			break
		}

		delay := calculateDelay(attempt, config)
		if operationName != "" {
			logRetryMessage("Operation '%s' failed (attempt %d/%d), retrying in %v: %v",
				operationName, attempt+1, config.MaxAttempts, delay, err)
		}

		select {
		case <-ctx.Done():
			if operationName != "" {
				return fmt.Errorf("operation '%s' cancelled during retry: %w", operationName, ctx.Err())
			}
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if operationName != "" {
		return fmt.Errorf("operation '%s' failed after %d attempts: %w", operationName, config.MaxAttempts, lastErr)
	}
	return fmt.Errorf("operation failed after %d attempts: %w", config.MaxAttempts, lastErr)
}

// calculateDelay calculates the delay for the next retry attempt
func calculateDelay(attempt int, config *RetryConfig) time.Duration {
	multiplier := 1.0
	for range attempt {
		multiplier *= config.BackoffFactor
	}

	delay := time.Duration(float64(config.InitialDelay) * multiplier)

	return min(delay, config.MaxDelay)
}
