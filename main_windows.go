//go:build windows

package main

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	findWindowAttempts = 20
	findWindowDelay    = 50 * time.Millisecond
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procFindWindowEx = user32.NewProc("FindWindowExW")
)

// mainWindowHandle finds the top-level window with the given title that
// belongs to this process. Wails may still be creating it when OnStartup
// runs, so the lookup waits briefly.
func mainWindowHandle(title string) (uintptr, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("invalid window title: %w", err)
	}

	pid := uint32(os.Getpid())
	for i := 0; i < findWindowAttempts; i++ {
		if hwnd := findOwnWindow(titlePtr, pid); hwnd != 0 {
			return hwnd, nil
		}
		time.Sleep(findWindowDelay)
	}
	return 0, fmt.Errorf("no window titled %q owned by process %d", title, pid)
}

func findOwnWindow(title *uint16, pid uint32) uintptr {
	var after uintptr
	for {
		hwnd, _, _ := procFindWindowEx.Call(0, after, 0, uintptr(unsafe.Pointer(title)))
		if hwnd == 0 {
			return 0
		}

		var owner uint32
		if _, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &owner); err == nil && owner == pid {
			return hwnd
		}
		after = hwnd
	}
}
