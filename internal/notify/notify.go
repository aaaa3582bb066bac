// Package notify sends desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Desktop delivers notifications through the OS notification center.
type Desktop struct {
	// Icon is an optional path to an icon file.
	Icon string
}

// Notify shows a notification with the given title and body.
func (d Desktop) Notify(title, body string) error {
	if err := beeep.Notify(title, body, d.Icon); err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}
