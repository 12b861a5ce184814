package platform

import "aspectlock/internal/geometry"

// Handle is an opaque native window handle (an HWND on Windows). A zero
// Handle means "no window".
type Handle uintptr

// SizingHandler receives one live-resize event: the candidate rectangle the
// OS proposes and the edge or corner being dragged. The handler may mutate
// the rectangle in place and reports whether it did. It always runs on the
// thread that owns the window.
type SizingHandler func(r *geometry.Rect, edge geometry.DragEdge) bool

// WindowAPI defines the interface for platform-specific window operations
type WindowAPI interface {
	// FindMainWindow returns the handle of the first visible, unowned
	// top-level window belonging to the current process, or zero when no
	// such window exists. Enumeration order is OS-defined.
	FindMainWindow() Handle

	// Subclass inserts handler into the message chain of the window,
	// tagged with id so it can be removed later without disturbing other
	// callbacks on the same window. Messages the handler does not consume
	// keep flowing to the rest of the chain.
	Subclass(h Handle, id uintptr, handler SizingHandler) error

	// RemoveSubclass removes the callback tagged with id from the window's
	// message chain. Removing a tag that is not attached is a no-op.
	RemoveSubclass(h Handle, id uintptr)
}
