package instance

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	titles []string
	bodies []string
	err    error
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return n.err
}

func TestGuard_NotifiesOncePerLaunch(t *testing.T) {
	n := &recordingNotifier{}
	g := NewGuard("Mute Overlay", n, true, zerolog.Nop())

	g.OnSecondLaunch(Launch{Args: []string{"mute-overlay.exe"}, WorkingDirectory: `C:\`})

	if len(n.titles) != 1 {
		t.Fatalf("notifications = %d; want 1", len(n.titles))
	}
	if n.titles[0] != "Running" {
		t.Errorf("title = %q; want Running", n.titles[0])
	}
	want := "Mute Overlay is already running in the background"
	if n.bodies[0] != want {
		t.Errorf("body = %q; want %q", n.bodies[0], want)
	}

	g.OnSecondLaunch(Launch{})
	if len(n.titles) != 2 {
		t.Errorf("notifications after second launch = %d; want 2", len(n.titles))
	}
	if g.Launches() != 2 {
		t.Errorf("Launches() = %d; want 2", g.Launches())
	}
}

func TestGuard_Disabled(t *testing.T) {
	n := &recordingNotifier{}
	g := NewGuard("Mute Overlay", n, false, zerolog.Nop())

	g.OnSecondLaunch(Launch{})

	if len(n.titles) != 0 {
		t.Errorf("notifications = %d; want none when disabled", len(n.titles))
	}
	if g.Launches() != 1 {
		t.Errorf("Launches() = %d; want 1", g.Launches())
	}
}

func TestGuard_NotifierFailureIsNotFatal(t *testing.T) {
	n := &recordingNotifier{err: errors.New("no notification daemon")}
	g := NewGuard("Mute Overlay", n, true, zerolog.Nop())

	g.OnSecondLaunch(Launch{})

	if len(n.titles) != 1 {
		t.Errorf("notifications = %d; want 1 attempt", len(n.titles))
	}
}

func TestGuard_NilNotifier(t *testing.T) {
	g := NewGuard("Mute Overlay", nil, true, zerolog.Nop())

	g.OnSecondLaunch(Launch{})

	if g.Launches() != 1 {
		t.Errorf("Launches() = %d; want 1", g.Launches())
	}
}
