// Package overlay turns an existing window into a click-through,
// always-on-top overlay by rewriting its extended style.
package overlay

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidHandle is returned for a zero window handle.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrUnsupported indicates that the platform has no extended window styles.
	ErrUnsupported = errors.New("extended window styles not supported on this platform")
)

// Window reads and writes the extended style of native window handles.
type Window interface {
	// SetExtendedStyle replaces the extended style and returns the previous one.
	SetExtendedStyle(hwnd uintptr, mask uint32) (prev uint32, err error)
	ExtendedStyle(hwnd uintptr) (uint32, error)
}

// WindowStyleWriteError is returned when the style write is rejected.
type WindowStyleWriteError struct {
	HWND uintptr
	Mask uint32
	Err  error
}

func (e *WindowStyleWriteError) Error() string {
	return fmt.Sprintf("set extended style 0x%08X on window 0x%X: %v", e.Mask, e.HWND, e.Err)
}

func (e *WindowStyleWriteError) Unwrap() error {
	return e.Err
}

// Configurator applies a Style to windows it does not own.
type Configurator struct {
	window Window
	style  Style
	log    zerolog.Logger
}

// New creates a Configurator that applies OverlayStyle. A nil window
// selects the platform implementation.
func New(window Window, logger zerolog.Logger) *Configurator {
	if window == nil {
		window = PlatformWindow()
	}
	return &Configurator{
		window: window,
		style:  OverlayStyle(),
		log:    logger.With().Str("component", "overlay").Logger(),
	}
}

// Style returns the style the Configurator applies.
func (c *Configurator) Style() Style {
	return c.style
}

// Apply writes the full style mask in a single call. It should run once,
// after the window is created and sized and before it is shown; repeating it
// leaves the window unchanged. Size and position are not touched.
func (c *Configurator) Apply(hwnd uintptr) error {
	mask := c.style.Mask()
	if hwnd == 0 {
		return &WindowStyleWriteError{HWND: hwnd, Mask: mask, Err: ErrInvalidHandle}
	}

	prev, err := c.window.SetExtendedStyle(hwnd, mask)
	if err != nil {
		return &WindowStyleWriteError{HWND: hwnd, Mask: mask, Err: err}
	}

	c.log.Debug().
		Str("hwnd", fmt.Sprintf("0x%X", hwnd)).
		Str("previous", StyleFromMask(prev).String()).
		Str("applied", c.style.String()).
		Msg("Extended window style applied")
	return nil
}

// ApplyOrDegrade applies the style and discards a write failure: the window
// then stays a normal, clickable window and the application keeps running.
// It reports whether the overlay style is active.
func (c *Configurator) ApplyOrDegrade(hwnd uintptr) bool {
	if err := c.Apply(hwnd); err != nil {
		c.log.Warn().Err(err).Msg("Overlay style not applied, continuing as a normal window")
		return false
	}
	return true
}

// Applied reads the window's extended style back and reports whether every
// overlay attribute is set.
func (c *Configurator) Applied(hwnd uintptr) (bool, error) {
	if hwnd == 0 {
		return false, ErrInvalidHandle
	}
	mask, err := c.window.ExtendedStyle(hwnd)
	if err != nil {
		return false, err
	}
	return StyleFromMask(mask).Covers(c.style), nil
}
