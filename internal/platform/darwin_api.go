//go:build darwin

package platform

import "errors"

// DarwinAPI implements WindowAPI for macOS platform
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS API instance
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for macOS
func NewWindowAPI() WindowAPI {
	return NewDarwinAPI()
}

// FindMainWindow always reports no window on macOS. AppKit resizes windows
// through NSWindow delegates rather than an interceptable message chain.
func (d *DarwinAPI) FindMainWindow() Handle {
	return 0
}

// Subclass is not supported on macOS.
func (d *DarwinAPI) Subclass(h Handle, id uintptr, handler SizingHandler) error {
	return errors.New("window subclassing is not supported on darwin")
}

// RemoveSubclass is a no-op on macOS.
func (d *DarwinAPI) RemoveSubclass(h Handle, id uintptr) {}
