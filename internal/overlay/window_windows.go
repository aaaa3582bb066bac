//go:build windows

package overlay

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const gwlExStyle int32 = -20

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetWindowLong = user32.NewProc(windowLongProc("Set"))
	procGetWindowLong = user32.NewProc(windowLongProc("Get"))
	procSetLastError  = kernel32.NewProc("SetLastError")
)

// SetWindowLongPtrW is only exported by 64-bit user32.
func windowLongProc(op string) string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return op + "WindowLongPtrW"
	}
	return op + "WindowLongW"
}

// PlatformWindow returns the user32 implementation of Window.
func PlatformWindow() Window {
	return user32Window{}
}

type user32Window struct{}

// SetExtendedStyle calls SetWindowLongPtrW(GWL_EXSTYLE). A zero return is
// only a failure when the last-error code is set, so it is cleared first on
// the same OS thread.
func (user32Window) SetExtendedStyle(hwnd uintptr, mask uint32) (uint32, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	idx := gwlExStyle
	prev, _, callErr := procSetWindowLong.Call(hwnd, uintptr(idx), uintptr(mask))
	if prev == 0 {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return 0, errno
		}
	}
	return uint32(prev), nil
}

func (user32Window) ExtendedStyle(hwnd uintptr) (uint32, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	idx := gwlExStyle
	style, _, callErr := procGetWindowLong.Call(hwnd, uintptr(idx))
	if style == 0 {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return 0, errno
		}
	}
	return uint32(style), nil
}
