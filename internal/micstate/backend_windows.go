//go:build windows

package micstate

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
)

// HRESULT values the backend treats specially
const (
	hresultFalse       uintptr = 0x00000001
	hresultChangedMode uintptr = 0x80010106
	hresultNotFound    uintptr = 0x80070490
)

const clsctxInprocServer = uint32(ole.CLSCTX_INPROC_SERVER)

// PlatformBackend returns the Core Audio (MMDevice API) backend.
func PlatformBackend() Backend {
	return coreAudioBackend{}
}

type coreAudioBackend struct{}

// OpenEnumerator initializes COM on a locked OS thread and creates an
// IMMDeviceEnumerator. The thread stays locked until the enumerator is
// released, so the whole chain must be used from the calling goroutine.
func (coreAudioBackend) OpenEnumerator() (Enumerator, error) {
	runtime.LockOSThread()

	uninit, err := coInitialize()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, clsctxInprocServer, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		if uninit {
			ole.CoUninitialize()
		}
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("create device enumerator: %w", err)
	}

	return &coreAudioEnumerator{mmde: mmde, uninit: uninit}, nil
}

// coInitialize reports whether a matching CoUninitialize is owed.
func coInitialize() (bool, error) {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return true, nil
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch oleErr.Code() {
		case hresultFalse:
			// already initialized on this thread, still counted
			return true, nil
		case hresultChangedMode:
			// initialized as MTA by someone else; usable, not ours to undo
			return false, nil
		}
	}
	return false, fmt.Errorf("initialize COM: %w", err)
}

type coreAudioEnumerator struct {
	mmde   *wca.IMMDeviceEnumerator
	uninit bool
}

func (e *coreAudioEnumerator) DefaultCaptureEndpoint(role Role) (Endpoint, error) {
	var mmd *wca.IMMDevice
	if err := e.mmde.GetDefaultAudioEndpoint(wca.ECapture, eRole(role), &mmd); err != nil {
		var oleErr *ole.OleError
		if errors.As(err, &oleErr) && oleErr.Code() == hresultNotFound {
			return nil, ErrNoDefaultDevice
		}
		return nil, err
	}
	if mmd == nil {
		return nil, ErrNoDefaultDevice
	}
	return &coreAudioEndpoint{mmd: mmd}, nil
}

func (e *coreAudioEnumerator) Release() {
	e.mmde.Release()
	if e.uninit {
		ole.CoUninitialize()
	}
	runtime.UnlockOSThread()
}

func eRole(r Role) uint32 {
	switch r {
	case RoleMultimedia:
		return wca.EMultimedia
	case RoleCommunications:
		return wca.ECommunications
	default:
		return wca.EConsole
	}
}

type coreAudioEndpoint struct {
	mmd *wca.IMMDevice
}

func (d *coreAudioEndpoint) ActivateMuteControl() (MuteControl, error) {
	var aev *wca.IAudioEndpointVolume
	if err := d.mmd.Activate(wca.IID_IAudioEndpointVolume, clsctxInprocServer, nil, &aev); err != nil {
		return nil, err
	}
	return &endpointVolume{aev: aev}, nil
}

func (d *coreAudioEndpoint) Release() {
	d.mmd.Release()
}

type endpointVolume struct {
	aev *wca.IAudioEndpointVolume
}

func (v *endpointVolume) Muted() (bool, error) {
	var muted bool
	if err := v.aev.GetMute(&muted); err != nil {
		return false, err
	}
	return muted, nil
}

func (v *endpointVolume) Release() {
	v.aev.Release()
}
