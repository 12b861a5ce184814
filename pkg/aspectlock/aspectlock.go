// Package aspectlock locks a host application's main window to a fixed
// width:height aspect ratio. It finds the window, hooks its live-resize
// notifications, and rewrites each candidate rectangle so the ratio holds
// while the edge the user drags stays under the cursor.
//
// Only interactive drags are corrected. Programmatic resizes, maximize and
// similar paths bypass the live-resize notification and keep whatever size
// the host gives them.
//
// All entry points must run on the thread that owns the target window; the
// host window system delivers resize callbacks on that same thread, which is
// the only reason the state below needs no locking.
package aspectlock

import (
	goerrors "errors"

	"aspectlock/internal/geometry"
	"aspectlock/internal/infrastructure/errors"
	"aspectlock/internal/infrastructure/logging"
	"aspectlock/internal/interceptor"
	"aspectlock/internal/platform"
)

// Lock holds the aspect-lock state for one process. At most one attachment
// is active at a time: Install while installed is an idempotent success.
type Lock struct {
	api    platform.WindowAPI
	logger logging.Logger
	hooks  *interceptor.Interceptor

	window    platform.Handle
	token     *interceptor.Token
	aspect    geometry.Aspect
	installed bool
}

// New creates a Lock using the given platform API. A nil api selects the
// current platform's implementation; a nil logger selects the default.
func New(api platform.WindowAPI, logger logging.Logger) *Lock {
	if api == nil {
		api = platform.NewWindowAPI()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Lock{
		api:    api,
		logger: logger,
		hooks:  interceptor.New(api, logger),
	}
}

// Install locates the process's main window and attaches the aspect hook
// targeting aspectWidth:aspectHeight (e.g. 16, 9). When already installed it
// returns nil without touching the existing attachment. Failures leave any
// previous state unchanged; a WindowNotFound failure means the host has not
// created its window yet and the call can simply be repeated later.
func (l *Lock) Install(aspectWidth, aspectHeight float64) error {
	// Arguments are validated before the idempotence check so a bad ratio
	// is always rejected, installed or not.
	aspect, err := geometry.NewAspect(aspectWidth, aspectHeight)
	if err != nil {
		return errors.NewLockError("install", err, errors.ErrCodeInvalidArgument)
	}

	if l.installed {
		return nil
	}

	window := l.api.FindMainWindow()
	if window == 0 {
		return errors.NewLockError("install",
			goerrors.New("no visible top-level window for this process"),
			errors.ErrCodeWindowNotFound)
	}

	token, err := l.hooks.Attach(window, aspect)
	if err != nil {
		return err
	}

	l.window = window
	l.token = token
	l.aspect = aspect
	l.installed = true

	l.logger.Info("aspect lock installed",
		"aspect_width", aspectWidth,
		"aspect_height", aspectHeight)
	return nil
}

// Uninstall detaches the hook. Calling it when nothing is installed is a
// no-op. It must run before the owning module unloads, otherwise the host
// would keep dispatching resize events into released code.
func (l *Lock) Uninstall() {
	if !l.installed {
		return
	}

	l.hooks.Detach(l.token)

	l.window = 0
	l.token = nil
	l.aspect = 0
	l.installed = false

	l.logger.Info("aspect lock uninstalled")
}

// Installed reports whether the hook is currently attached.
func (l *Lock) Installed() bool {
	return l.installed
}

// Aspect returns the active target ratio, zero when not installed.
func (l *Lock) Aspect() geometry.Aspect {
	return l.aspect
}

// Window returns the locked window's handle, zero when not installed.
func (l *Lock) Window() platform.Handle {
	return l.window
}

// defaultLock backs the package-level boundary below. The plugin model
// allows at most one instance per process, so a single process-wide Lock
// matches exactly one host window.
var defaultLock = New(nil, nil)

// Install is the process-wide boundary for non-Go style hosts: 1 on success
// or when already installed, 0 on any failure. The failure reasons (bad
// arguments, no window yet, attach rejected) are deliberately collapsed; the
// typed errors live on Lock.Install.
func Install(aspectWidth, aspectHeight float64) int {
	if err := defaultLock.Install(aspectWidth, aspectHeight); err != nil {
		logging.LogLockError(defaultLock.logger, err, "install")
		return 0
	}
	return 1
}

// Uninstall detaches the process-wide lock; no-op when not installed.
func Uninstall() {
	defaultLock.Uninstall()
}

// IsInstalled returns 1 when the process-wide lock is attached, 0 otherwise.
func IsInstalled() int {
	if defaultLock.Installed() {
		return 1
	}
	return 0
}

// Default returns the process-wide Lock used by the boundary functions, for
// hosts that want the typed-error API on the same instance.
func Default() *Lock {
	return defaultLock
}
