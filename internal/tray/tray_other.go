//go:build !windows

package tray

// Start is a no-op: on Linux and macOS the tray toolkit needs the main
// thread, which Wails already owns.
func (t *Tray) Start() {
	t.log.Debug().Int("icon_bytes", len(iconData)).Msg("Tray not available on this platform")
}

func (t *Tray) stop() {}
