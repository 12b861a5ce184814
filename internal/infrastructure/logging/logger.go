package logging

import (
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Logger interface for aspect-lock operations. Fields are alternating
// key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// CharmLogger implements Logger on top of charmbracelet/log
type CharmLogger struct {
	logger *charmlog.Logger
}

// NewCharmLogger wraps an existing charm logger
func NewCharmLogger(logger *charmlog.Logger) *CharmLogger {
	return &CharmLogger{logger: logger}
}

// NewLogger creates a logger writing to w at the given level, with the
// timestamp format used across the project.
func NewLogger(w io.Writer, level charmlog.Level) *CharmLogger {
	return NewCharmLogger(charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "aspectlock",
	}))
}

// NewDefaultLogger creates the logger used when the host provides none:
// info level to stderr, debug when ASPECTLOCK_DEBUG is set.
func NewDefaultLogger() Logger {
	level := charmlog.InfoLevel
	if os.Getenv("ASPECTLOCK_DEBUG") != "" {
		level = charmlog.DebugLevel
	}
	return NewLogger(os.Stderr, level)
}

func (c *CharmLogger) Debug(msg string, fields ...interface{}) {
	c.logger.Debug(msg, fields...)
}

func (c *CharmLogger) Info(msg string, fields ...interface{}) {
	c.logger.Info(msg, fields...)
}

func (c *CharmLogger) Warn(msg string, fields ...interface{}) {
	c.logger.Warn(msg, fields...)
}

func (c *CharmLogger) Error(msg string, fields ...interface{}) {
	c.logger.Error(msg, fields...)
}

// LockFailure interface for error classification (avoids a circular import
// with the errors package)
type LockFailure interface {
	Error() string
	GetCode() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogLockError logs lock errors with their classification and context
func LogLockError(logger Logger, err error, operation string) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	if lockErr, ok := err.(LockFailure); ok {
		fields := []interface{}{
			"operation", operation,
			"error_code", lockErr.GetCode(),
		}
		for k, v := range lockErr.GetContext() {
			fields = append(fields, k, v)
		}
		logger.Error(err.Error(), fields...)
		return
	}

	logger.Error(err.Error(), "operation", operation)
}
