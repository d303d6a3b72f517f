package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-dialog/logging"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// output is where OSC52 sequences are written. Tests swap it.
var output io.Writer = os.Stdout

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return fmt.Errorf("%w: OSC52 unsupported by terminal", ErrUnavailable)
	}
	return writeOSC52(output, text)
}

func writeOSC52(w io.Writer, text string) error {
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	f, ok := output.(*os.File)
	return ok && isTTY(f)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
