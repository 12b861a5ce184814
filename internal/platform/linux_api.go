//go:build linux

package platform

import "errors"

// LinuxAPI implements WindowAPI for Linux platform
type LinuxAPI struct{}

// NewLinuxAPI creates a new Linux API instance
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for Linux
func NewWindowAPI() WindowAPI {
	return NewLinuxAPI()
}

// FindMainWindow always reports no window on Linux. X11 and Wayland deliver
// final sizes rather than the live candidate rectangles the correction
// needs, so there is nothing to locate.
func (l *LinuxAPI) FindMainWindow() Handle {
	return 0
}

// Subclass is not supported on Linux.
func (l *LinuxAPI) Subclass(h Handle, id uintptr, handler SizingHandler) error {
	return errors.New("window subclassing is not supported on linux")
}

// RemoveSubclass is a no-op on Linux.
func (l *LinuxAPI) RemoveSubclass(h Handle, id uintptr) {}
