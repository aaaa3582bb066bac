//go:build !windows

package micstate

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestPlatformBackend_Unsupported(t *testing.T) {
	q := New(nil, zerolog.Nop())

	_, err := q.Muted()
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Muted error = %v; want ErrUnsupported", err)
	}

	if got := q.Status(); !strings.HasPrefix(got, ErrorPrefix) {
		t.Errorf("Status() = %q; want error prefix", got)
	}
}
