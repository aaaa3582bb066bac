// Package instance reacts to duplicate launches reported by the
// single-instance lock.
package instance

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Notifier shows a notification to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Launch describes a duplicate launch attempt.
type Launch struct {
	Args             []string
	WorkingDirectory string
}

// Guard tells the user that the application is already running whenever a
// second copy is started. The lock itself is owned by the caller.
type Guard struct {
	appName  string
	notifier Notifier
	enabled  bool
	log      zerolog.Logger

	launches atomic.Int64
}

// NewGuard creates a Guard. With enabled false duplicate launches are only
// logged.
func NewGuard(appName string, notifier Notifier, enabled bool, logger zerolog.Logger) *Guard {
	return &Guard{
		appName:  appName,
		notifier: notifier,
		enabled:  enabled,
		log:      logger.With().Str("component", "instance").Logger(),
	}
}

// Title and Body return the notification text.
func (g *Guard) Title() string {
	return "Running"
}

func (g *Guard) Body() string {
	return fmt.Sprintf("%s is already running in the background", g.appName)
}

// OnSecondLaunch handles one duplicate launch attempt. It sends exactly one
// notification per call; a delivery failure is logged and otherwise ignored.
func (g *Guard) OnSecondLaunch(l Launch) {
	n := g.launches.Add(1)
	g.log.Info().
		Int64("attempt", n).
		Strs("args", l.Args).
		Str("cwd", l.WorkingDirectory).
		Msg("Second instance launch blocked")

	if !g.enabled || g.notifier == nil {
		return
	}
	if err := g.notifier.Notify(g.Title(), g.Body()); err != nil {
		g.log.Warn().Err(err).Msg("Failed to notify about running instance")
	}
}

// Launches returns how many duplicate launches have been blocked.
func (g *Guard) Launches() int64 {
	return g.launches.Load()
}
