//go:build windows

package platform

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"aspectlock/internal/geometry"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	comctl32 = windows.NewLazySystemDLL("comctl32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindow                = user32.NewProc("GetWindow")

	procSetWindowSubclass    = comctl32.NewProc("SetWindowSubclass")
	procRemoveWindowSubclass = comctl32.NewProc("RemoveWindowSubclass")
	procDefSubclassProc      = comctl32.NewProc("DefSubclassProc")
	procInitCommonControlsEx = comctl32.NewProc("InitCommonControlsEx")
)

const (
	gwOwner            = 4
	wmSizing           = 0x0214
	iccStandardClasses = 0x00004000
)

// INITCOMMONCONTROLSEX as passed to InitCommonControlsEx
type initCommonControlsEx struct {
	dwSize uint32
	dwICC  uint32
}

// WindowsAPI implements WindowAPI for Windows platform
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for Windows
func NewWindowAPI() WindowAPI {
	return NewWindowsAPI()
}

// enumContext carries the filter input and result across the EnumWindows
// callback boundary via the lparam.
type enumContext struct {
	pid  uint32
	hwnd Handle
}

// enumWindowsCallback is created once: syscall.NewCallback allocations are
// never released, so per-call closures would leak callback slots.
var enumWindowsCallback = syscall.NewCallback(func(hwnd, lparam uintptr) uintptr {
	ctx := (*enumContext)(unsafe.Pointer(lparam))

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid != ctx.pid {
		return 1 // continue enumeration
	}

	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return 1
	}

	// Owned windows are dialogs/tool windows, not the main window.
	if owner, _, _ := procGetWindow.Call(hwnd, gwOwner); owner != 0 {
		return 1
	}

	ctx.hwnd = Handle(hwnd)
	return 0 // stop
})

// FindMainWindow enumerates top-level windows and returns the first visible,
// unowned one belonging to the current process.
func (w *WindowsAPI) FindMainWindow() Handle {
	ctx := enumContext{pid: windows.GetCurrentProcessId()}
	procEnumWindows.Call(enumWindowsCallback, uintptr(unsafe.Pointer(&ctx)))
	return ctx.hwnd
}

// subclassKey identifies one attached callback: SetWindowSubclass keys its
// chain entries by (callback, id) per window.
type subclassKey struct {
	hwnd uintptr
	id   uintptr
}

// sizingHandlers is written only from Subclass/RemoveSubclass and read from
// the subclass procedure; all of it runs on the window's UI thread, so there
// is no lock.
var sizingHandlers = map[subclassKey]SizingHandler{}

var subclassCallback = syscall.NewCallback(func(hwnd, msg, wparam, lparam, id, refData uintptr) uintptr {
	if msg == wmSizing {
		if handler, ok := sizingHandlers[subclassKey{hwnd: hwnd, id: id}]; ok {
			rect := (*geometry.Rect)(unsafe.Pointer(lparam))
			if handler(rect, geometry.DragEdge(wparam)) {
				return 1 // rect was modified
			}
		}
	}

	ret, _, _ := procDefSubclassProc.Call(hwnd, msg, wparam, lparam)
	return ret
})

var initCommonControlsOnce sync.Once

// initCommonControls makes sure comctl32 is initialized before the first
// SetWindowSubclass call.
func initCommonControls() {
	initCommonControlsOnce.Do(func() {
		icc := initCommonControlsEx{dwICC: iccStandardClasses}
		icc.dwSize = uint32(unsafe.Sizeof(icc))
		procInitCommonControlsEx.Call(uintptr(unsafe.Pointer(&icc)))
	})
}

// Subclass attaches the sizing handler to the window's message chain under
// the given id. Previously attached callbacks keep working: everything but
// WM_SIZING is forwarded through DefSubclassProc.
func (w *WindowsAPI) Subclass(h Handle, id uintptr, handler SizingHandler) error {
	if h == 0 {
		return fmt.Errorf("invalid window handle")
	}
	if handler == nil {
		return fmt.Errorf("nil sizing handler")
	}

	initCommonControls()

	key := subclassKey{hwnd: uintptr(h), id: id}
	sizingHandlers[key] = handler

	ret, _, _ := procSetWindowSubclass.Call(uintptr(h), subclassCallback, id, 0)
	if ret == 0 {
		delete(sizingHandlers, key)
		return fmt.Errorf("SetWindowSubclass failed for window %#x", uintptr(h))
	}

	return nil
}

// RemoveSubclass detaches the callback registered under id. Safe to call
// when nothing is attached.
func (w *WindowsAPI) RemoveSubclass(h Handle, id uintptr) {
	if h == 0 {
		return
	}
	procRemoveWindowSubclass.Call(uintptr(h), subclassCallback, id)
	delete(sizingHandlers, subclassKey{hwnd: uintptr(h), id: id})
}
