// Package micstate answers whether the system default microphone is muted.
//
// Every query resolves the endpoint chain from scratch: the default capture
// device can change between calls, so nothing is cached.
package micstate

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// ErrorPrefix marks a Status result that carries a diagnostic instead of a
// mute state.
const ErrorPrefix = "Error: "

// Role selects which default device the OS reports for a data-flow direction.
type Role int

const (
	// RoleConsole is the device a typical voice application uses. Queries
	// always use it; other roles report a different device when several
	// microphones are attached.
	RoleConsole Role = iota
	RoleMultimedia
	RoleCommunications
)

func (r Role) String() string {
	switch r {
	case RoleConsole:
		return "console"
	case RoleMultimedia:
		return "multimedia"
	case RoleCommunications:
		return "communications"
	default:
		return "unknown"
	}
}

// Backend opens a handle to the OS audio-device enumeration facility.
type Backend interface {
	OpenEnumerator() (Enumerator, error)
}

// Enumerator resolves default audio endpoints. Release must be called once
// the enumerator is no longer needed.
type Enumerator interface {
	DefaultCaptureEndpoint(role Role) (Endpoint, error)
	Release()
}

// Endpoint is a single audio device.
type Endpoint interface {
	ActivateMuteControl() (MuteControl, error)
	Release()
}

// MuteControl reads the mute flag of an endpoint.
type MuteControl interface {
	Muted() (bool, error)
	Release()
}

// Querier runs mute state queries against a Backend.
type Querier struct {
	backend Backend
	log     zerolog.Logger

	// one query in flight at a time
	mu sync.Mutex
}

// New creates a Querier. A nil backend selects the platform backend.
func New(backend Backend, logger zerolog.Logger) *Querier {
	if backend == nil {
		backend = PlatformBackend()
	}
	return &Querier{
		backend: backend,
		log:     logger.With().Str("component", "micstate").Logger(),
	}
}

// Muted reports whether the current default capture endpoint (console role)
// is muted. Any failure is returned as a *PlatformAudioError; no state is
// guessed and nothing is retried.
func (q *Querier) Muted() (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	enum, err := q.backend.OpenEnumerator()
	if err != nil {
		return false, &PlatformAudioError{Step: StepConnect, Err: err}
	}
	defer enum.Release()

	endpoint, err := enum.DefaultCaptureEndpoint(RoleConsole)
	if err != nil {
		return false, &PlatformAudioError{Step: StepDefaultDevice, Err: err}
	}
	defer endpoint.Release()

	control, err := endpoint.ActivateMuteControl()
	if err != nil {
		return false, &PlatformAudioError{Step: StepActivate, Err: err}
	}
	defer control.Release()

	muted, err := control.Muted()
	if err != nil {
		return false, &PlatformAudioError{Step: StepReadMute, Err: err}
	}
	return muted, nil
}

// Status runs a query and formats the outcome for the front-end: "true",
// "false", or ErrorPrefix followed by the diagnostic.
func (q *Querier) Status() string {
	muted, err := q.Muted()
	if err != nil {
		q.log.Debug().Err(err).Msg("Mute state query failed")
		return ErrorPrefix + err.Error()
	}
	return strconv.FormatBool(muted)
}
