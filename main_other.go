//go:build !windows

package main

import "mute-overlay/internal/overlay"

// mainWindowHandle has no native handle to offer outside Windows.
func mainWindowHandle(title string) (uintptr, error) {
	return 0, overlay.ErrUnsupported
}
