//go:build !windows

package overlay

// PlatformWindow returns a Window whose operations fail with ErrUnsupported.
func PlatformWindow() Window {
	return unsupportedWindow{}
}

type unsupportedWindow struct{}

func (unsupportedWindow) SetExtendedStyle(hwnd uintptr, mask uint32) (uint32, error) {
	return 0, ErrUnsupported
}

func (unsupportedWindow) ExtendedStyle(hwnd uintptr) (uint32, error) {
	return 0, ErrUnsupported
}
