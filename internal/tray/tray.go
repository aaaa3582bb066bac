// Package tray owns the notification-area icon and its menu.
package tray

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

//go:embed icon.ico
var iconData []byte

// Tray is the notification-area icon with a version label and a Quit item.
type Tray struct {
	appName string
	version string
	onQuit  func()
	log     zerolog.Logger

	stopOnce sync.Once
}

// New creates a tray. onQuit is called when the user picks Quit; it should
// terminate the application.
func New(appName, version string, onQuit func(), logger zerolog.Logger) *Tray {
	return &Tray{
		appName: appName,
		version: version,
		onQuit:  onQuit,
		log:     logger.With().Str("component", "tray").Logger(),
	}
}

// VersionLabel is the disabled first menu entry.
func (t *Tray) VersionLabel() string {
	return fmt.Sprintf("%s %s", t.appName, t.version)
}

// Tooltip is shown when hovering the icon.
func (t *Tray) Tooltip() string {
	return t.appName
}

// quit runs the quit callback.
func (t *Tray) quit() {
	t.log.Info().Msg("Quit selected from tray")
	if t.onQuit != nil {
		t.onQuit()
	}
}

// Stop removes the icon. Safe to call more than once.
func (t *Tray) Stop() {
	t.stopOnce.Do(t.stop)
}
