package micstate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDefaultDevice indicates that no default capture device is configured.
	ErrNoDefaultDevice = errors.New("no default capture device")

	// ErrUnsupported indicates that the platform has no audio endpoint API.
	ErrUnsupported = errors.New("audio endpoint query not supported on this platform")
)

// Step names the stage of the endpoint resolution chain that failed.
type Step int

const (
	StepConnect Step = iota
	StepDefaultDevice
	StepActivate
	StepReadMute
)

func (s Step) String() string {
	switch s {
	case StepConnect:
		return "connect to audio subsystem"
	case StepDefaultDevice:
		return "resolve default capture device"
	case StepActivate:
		return "activate mute control"
	case StepReadMute:
		return "read mute state"
	default:
		return "unknown step"
	}
}

// PlatformAudioError is returned by Querier.Muted when any step of the
// endpoint resolution chain fails.
type PlatformAudioError struct {
	Step Step
	Err  error
}

func (e *PlatformAudioError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Step, e.Err)
}

func (e *PlatformAudioError) Unwrap() error {
	return e.Err
}
