//go:build !windows

package micstate

// PlatformBackend returns a backend that fails every query with
// ErrUnsupported.
func PlatformBackend() Backend {
	return unsupportedBackend{}
}

type unsupportedBackend struct{}

func (unsupportedBackend) OpenEnumerator() (Enumerator, error) {
	return nil, ErrUnsupported
}
