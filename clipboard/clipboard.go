package clipboard

import (
	"errors"

	"github.com/andareed/siftly-dialog/logging"
	"github.com/atotto/clipboard"
)

// ErrUnavailable means neither the system clipboard nor OSC52 could be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy puts text on the system clipboard, falling back to an OSC52
// escape sequence (works over SSH in most terminals).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}
