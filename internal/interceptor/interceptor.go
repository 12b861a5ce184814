// Package interceptor attaches the aspect-correction callback to a window's
// message chain and detaches it again. It owns the fixed tag that marks this
// module's callback so other subclasses on the same window are untouched.
package interceptor

import (
	"errors"
	"fmt"

	"aspectlock/internal/geometry"
	lockerrors "aspectlock/internal/infrastructure/errors"
	"aspectlock/internal/infrastructure/logging"
	"aspectlock/internal/platform"
)

// subclassTag marks this module's callback in the window's subclass chain.
// The value is arbitrary but must stay fixed so Detach removes exactly the
// callback Attach inserted.
const subclassTag uintptr = 0x0a59ec71

// Token is the capability returned by Attach and required by Detach. Holding
// it is holding the attachment; there is no other way to release the hook.
type Token struct {
	window platform.Handle
	id     uintptr
}

// Window returns the handle the token is attached to.
func (t *Token) Window() platform.Handle {
	if t == nil {
		return 0
	}
	return t.window
}

// Interceptor wires the aspect correction into live-resize notifications
type Interceptor struct {
	api    platform.WindowAPI
	logger logging.Logger
}

// New creates an interceptor using the given platform API
func New(api platform.WindowAPI, logger logging.Logger) *Interceptor {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Interceptor{api: api, logger: logger}
}

// Attach subclasses the window so every live-resize candidate rectangle is
// corrected to the given aspect before the OS applies it. The returned Token
// releases the attachment via Detach. Messages other than the live-resize
// notification keep flowing to the window's previous procedure.
func (i *Interceptor) Attach(h platform.Handle, aspect geometry.Aspect) (*Token, error) {
	if h == 0 {
		return nil, lockerrors.NewLockError("attach", errors.New("zero window handle"), lockerrors.ErrCodeWindowNotFound)
	}
	if !aspect.Valid() {
		return nil, lockerrors.NewLockError("attach", errors.New("invalid aspect ratio"), lockerrors.ErrCodeInvalidArgument)
	}

	handler := func(r *geometry.Rect, edge geometry.DragEdge) bool {
		return aspect.Correct(r, edge)
	}

	if err := i.api.Subclass(h, subclassTag, handler); err != nil {
		return nil, lockerrors.NewLockError("attach", err, lockerrors.ErrCodeAttachFailure).
			WithContext("window", handleString(h))
	}

	i.logger.Debug("sizing hook attached", "window", handleString(h))
	return &Token{window: h, id: subclassTag}, nil
}

// Detach removes the callback identified by the token. A nil token is a
// no-op, as is detaching one that was already released.
func (i *Interceptor) Detach(t *Token) {
	if t == nil || t.window == 0 {
		return
	}
	i.api.RemoveSubclass(t.window, t.id)
	i.logger.Debug("sizing hook detached", "window", handleString(t.window))
}

// handleString formats a window handle for log fields
func handleString(h platform.Handle) string {
	return fmt.Sprintf("%#x", uintptr(h))
}
