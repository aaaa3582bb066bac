package overlay

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type rect struct{ x, y, w, h int }

// fakeWindow stands in for user32: one extended style and one rect per handle.
type fakeWindow struct {
	styles   map[uintptr]uint32
	rects    map[uintptr]rect
	writes   int
	writeErr error
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		styles: make(map[uintptr]uint32),
		rects:  make(map[uintptr]rect),
	}
}

func (w *fakeWindow) SetExtendedStyle(hwnd uintptr, mask uint32) (uint32, error) {
	w.writes++
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	prev := w.styles[hwnd]
	w.styles[hwnd] = mask
	return prev, nil
}

func (w *fakeWindow) ExtendedStyle(hwnd uintptr) (uint32, error) {
	return w.styles[hwnd], nil
}

func TestConfigurator_AppliesAllFlags(t *testing.T) {
	w := newFakeWindow()
	w.rects[0x1234] = rect{0, 0, 1920, 70}
	c := New(w, zerolog.Nop())

	if err := c.Apply(0x1234); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	got := StyleFromMask(w.styles[0x1234])
	if got != OverlayStyle() {
		t.Errorf("style = %v; want %v", got, OverlayStyle())
	}
	if w.writes != 1 {
		t.Errorf("writes = %d; want a single style write", w.writes)
	}

	ok, err := c.Applied(0x1234)
	if err != nil {
		t.Fatalf("Applied failed: %v", err)
	}
	if !ok {
		t.Error("Applied() = false after Apply")
	}

	if w.rects[0x1234] != (rect{0, 0, 1920, 70}) {
		t.Errorf("rect changed to %+v", w.rects[0x1234])
	}
}

func TestConfigurator_Idempotent(t *testing.T) {
	w := newFakeWindow()
	c := New(w, zerolog.Nop())

	if err := c.Apply(0x10); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	once := w.styles[0x10]

	if err := c.Apply(0x10); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if w.styles[0x10] != once {
		t.Errorf("style after second Apply = 0x%X; want 0x%X", w.styles[0x10], once)
	}
}

func TestConfigurator_WriteFailure(t *testing.T) {
	w := newFakeWindow()
	w.writeErr = errors.New("access denied")
	c := New(w, zerolog.Nop())

	err := c.Apply(0x10)
	var styleErr *WindowStyleWriteError
	if !errors.As(err, &styleErr) {
		t.Fatalf("Apply error = %v; want *WindowStyleWriteError", err)
	}
	if styleErr.Mask != OverlayStyle().Mask() {
		t.Errorf("error mask = 0x%X; want 0x%X", styleErr.Mask, OverlayStyle().Mask())
	}

	if c.ApplyOrDegrade(0x10) {
		t.Error("ApplyOrDegrade() = true on write failure")
	}

	ok, err := c.Applied(0x10)
	if err != nil {
		t.Fatalf("Applied failed: %v", err)
	}
	if ok {
		t.Error("Applied() = true after failed write")
	}
}

func TestConfigurator_ZeroHandle(t *testing.T) {
	w := newFakeWindow()
	c := New(w, zerolog.Nop())

	if err := c.Apply(0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Apply(0) error = %v; want ErrInvalidHandle", err)
	}
	if w.writes != 0 {
		t.Errorf("writes = %d; want none for a zero handle", w.writes)
	}
	if _, err := c.Applied(0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Applied(0) error = %v; want ErrInvalidHandle", err)
	}
}

func TestConfigurator_ApplyOrDegrade(t *testing.T) {
	c := New(newFakeWindow(), zerolog.Nop())

	if !c.ApplyOrDegrade(0x42) {
		t.Error("ApplyOrDegrade() = false on success")
	}
}
