//go:build windows

package tray

import (
	"runtime"

	"github.com/getlantern/systray"
)

// Start runs the tray on its own goroutine. On Windows systray creates a
// hidden window and pumps its messages on the thread that calls Run, so it
// does not compete with the Wails UI thread.
func (t *Tray) Start() {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		systray.Run(t.onReady, t.onExit)
	}()
}

func (t *Tray) onReady() {
	systray.SetIcon(iconData)
	systray.SetTooltip(t.Tooltip())

	versionItem := systray.AddMenuItem(t.VersionLabel(), "")
	versionItem.Disable()

	mQuit := systray.AddMenuItem("Quit", "Exit "+t.appName)

	go func() {
		<-mQuit.ClickedCh
		t.quit()
	}()

	t.log.Debug().Msg("Tray ready")
}

func (t *Tray) onExit() {
	t.log.Debug().Msg("Tray exited")
}

func (t *Tray) stop() {
	systray.Quit()
}
