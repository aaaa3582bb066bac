package overlay

import "strings"

// Extended window style bits (WS_EX_*).
const (
	wsExTopmost     uint32 = 0x00000008
	wsExTransparent uint32 = 0x00000020
	wsExAppWindow   uint32 = 0x00040000
	wsExLayered     uint32 = 0x00080000
	wsExComposited  uint32 = 0x02000000
)

// Style is the set of extended window attributes the overlay relies on.
type Style struct {
	AppWindow   bool `json:"app_window"`  // listed in taskbar and switcher
	Composited  bool `json:"composited"`  // double-buffered painting
	Layered     bool `json:"layered"`     // per-window transparency
	Transparent bool `json:"transparent"` // click-through
	Topmost     bool `json:"topmost"`     // above non-topmost windows
}

// OverlayStyle returns the style of a click-through, always-on-top strip.
func OverlayStyle() Style {
	return Style{
		AppWindow:   true,
		Composited:  true,
		Layered:     true,
		Transparent: true,
		Topmost:     true,
	}
}

// Mask encodes the style as a GWL_EXSTYLE value.
func (s Style) Mask() uint32 {
	var mask uint32
	if s.AppWindow {
		mask |= wsExAppWindow
	}
	if s.Composited {
		mask |= wsExComposited
	}
	if s.Layered {
		mask |= wsExLayered
	}
	if s.Transparent {
		mask |= wsExTransparent
	}
	if s.Topmost {
		mask |= wsExTopmost
	}
	return mask
}

// StyleFromMask decodes the overlay-relevant bits of a GWL_EXSTYLE value.
// Unrelated bits are ignored.
func StyleFromMask(mask uint32) Style {
	return Style{
		AppWindow:   mask&wsExAppWindow != 0,
		Composited:  mask&wsExComposited != 0,
		Layered:     mask&wsExLayered != 0,
		Transparent: mask&wsExTransparent != 0,
		Topmost:     mask&wsExTopmost != 0,
	}
}

// Covers reports whether every attribute set in want is also set in s.
func (s Style) Covers(want Style) bool {
	m := want.Mask()
	return s.Mask()&m == m
}

func (s Style) String() string {
	var names []string
	if s.AppWindow {
		names = append(names, "APPWINDOW")
	}
	if s.Composited {
		names = append(names, "COMPOSITED")
	}
	if s.Layered {
		names = append(names, "LAYERED")
	}
	if s.Transparent {
		names = append(names, "TRANSPARENT")
	}
	if s.Topmost {
		names = append(names, "TOPMOST")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
