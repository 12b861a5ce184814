// Package app is the Wails-bound demo host. It owns a resizable window and
// locks it with the aspectlock library the way a real host process would:
// install once the window exists, change the ratio on request, detach on
// shutdown.
package app

import (
	"context"
	"fmt"

	"aspectlock/internal/config"
	"aspectlock/internal/infrastructure/errors"
	"aspectlock/internal/infrastructure/logging"
	"aspectlock/pkg/aspectlock"
)

// App struct represents the demo host application
type App struct {
	ctx    context.Context
	lock   *aspectlock.Lock
	cfg    config.Config
	logger logging.Logger

	// Ratio currently requested, kept in width:height form for display;
	// the lock itself stores only the reduced height-over-width value.
	aspectWidth  float64
	aspectHeight float64
}

// LockStatus is the state snapshot exposed to the frontend
type LockStatus struct {
	Installed    bool    `json:"installed"`
	AspectWidth  float64 `json:"aspectWidth"`
	AspectHeight float64 `json:"aspectHeight"`
	Label        string  `json:"label"`
}

// NewApp creates the demo host with dependency injection
func NewApp(cfg config.Config, lock *aspectlock.Lock, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if lock == nil {
		lock = aspectlock.New(nil, logger)
	}
	return &App{
		lock:         lock,
		cfg:          cfg,
		logger:       logger,
		aspectWidth:  cfg.AspectWidth,
		aspectHeight: cfg.AspectHeight,
	}
}

// Startup is called at application startup, before the window is visible
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.logger.Debug("demo host starting",
		"aspect_width", a.cfg.AspectWidth,
		"aspect_height", a.cfg.AspectHeight)
}

// DomReady runs once the window is up; this is the earliest point the
// locator can see a visible top-level window, so the lock is installed here.
// The retry covers the gap between DOM readiness and the window actually
// becoming visible.
func (a *App) DomReady(ctx context.Context) {
	err := errors.WithRetry(ctx, a.cfg.RetryConfig(), func() error {
		return a.lock.Install(a.aspectWidth, a.aspectHeight)
	}, "install")
	if err != nil {
		// Graceful degradation: the demo keeps running as a plain
		// resizable window.
		logging.LogLockError(a.logger, err, "install")
		return
	}
	a.logger.Info("window aspect locked", "ratio", a.ratioLabel())
}

// BeforeClose is called when the window tries to close; never prevents it
func (a *App) BeforeClose(ctx context.Context) bool {
	return false
}

// Shutdown detaches the lock before the process unwinds
func (a *App) Shutdown(ctx context.Context) {
	a.lock.Uninstall()
}

// Status returns the current lock state for the frontend
func (a *App) Status() LockStatus {
	return LockStatus{
		Installed:    a.lock.Installed(),
		AspectWidth:  a.aspectWidth,
		AspectHeight: a.aspectHeight,
		Label:        a.ratioLabel(),
	}
}

// SetRatio reinstalls the lock with a new target ratio. The previous lock
// stays in place when the new ratio is rejected.
func (a *App) SetRatio(width, height float64) (LockStatus, error) {
	if width <= 0 || height <= 0 {
		return a.Status(), fmt.Errorf("aspect ratio components must be positive, got %g:%g", width, height)
	}

	wasInstalled := a.lock.Installed()
	a.lock.Uninstall()

	if err := a.lock.Install(width, height); err != nil {
		logging.LogLockError(a.logger, err, "set_ratio")
		// Try to restore the previous ratio rather than leaving the
		// window unlocked.
		if wasInstalled {
			if restoreErr := a.lock.Install(a.aspectWidth, a.aspectHeight); restoreErr != nil {
				logging.LogLockError(a.logger, restoreErr, "set_ratio_restore")
			}
		}
		return a.Status(), err
	}

	a.aspectWidth = width
	a.aspectHeight = height
	a.logger.Info("aspect ratio changed", "ratio", a.ratioLabel())
	return a.Status(), nil
}

// Unlock detaches the lock so the window resizes freely again
func (a *App) Unlock() LockStatus {
	a.lock.Uninstall()
	return a.Status()
}

// Relock reinstalls the lock with the last requested ratio
func (a *App) Relock() (LockStatus, error) {
	if err := a.lock.Install(a.aspectWidth, a.aspectHeight); err != nil {
		logging.LogLockError(a.logger, err, "relock")
		return a.Status(), err
	}
	return a.Status(), nil
}

func (a *App) ratioLabel() string {
	return fmt.Sprintf("%g:%g", a.aspectWidth, a.aspectHeight)
}
