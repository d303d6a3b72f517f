package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlay is an open panel waiting to be composited by the Screen. Its
// hits are relative to the panel's top-left corner.
type overlay struct {
	panel    string
	width    int
	height   int
	backdrop lipgloss.Style
	hits     *HitMap
	keys     []keyHandler
	dismiss  Handler
}

// dimView pads view to w x h and repaints it with the backdrop style,
// dropping the original colours.
func dimView(view string, w, h int, backdrop lipgloss.Style) string {
	lines := strings.Split(view, "\n")
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Strip(lines[i])
		}
		if lw := ansi.StringWidth(line); lw < w {
			line += strings.Repeat(" ", w-lw)
		} else if lw > w {
			line = ansi.Truncate(line, w, "")
		}
		out[i] = backdrop.Render(line)
	}
	return strings.Join(out, "\n")
}

// spliceOverlay writes the panel's lines into view with their top-left corner
// at (anchorX, anchorY). Cells outside the view are dropped.
func spliceOverlay(view, panel string, anchorX, anchorY int) string {
	if panel == "" {
		return view
	}
	overlayLines := strings.Split(panel, "\n")
	viewLines := strings.Split(view, "\n")
	overlayWidth := 0
	for _, l := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(l))
	}

	for i, overlayLine := range overlayLines {
		row := anchorY + i
		if row < 0 || row >= len(viewLines) {
			continue
		}
		viewLine := viewLines[row]
		viewWidth := ansi.StringWidth(viewLine)

		var b strings.Builder
		if anchorX > 0 {
			prefix := ansi.Truncate(viewLine, anchorX, "")
			b.WriteString(prefix)
			if pw := ansi.StringWidth(prefix); pw < anchorX {
				b.WriteString(strings.Repeat(" ", anchorX-pw))
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(overlayLine)
		if pad := overlayWidth - ansi.StringWidth(overlayLine); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("\x1b[0m")

		if suffixStart := anchorX + overlayWidth; suffixStart < viewWidth {
			b.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}
		viewLines[row] = b.String()
	}
	return strings.Join(viewLines, "\n")
}

// centre returns the top-left corner that centres a w x h box on a
// screenW x screenH screen, never negative.
func centre(screenW, screenH, w, h int) (int, int) {
	return max((screenW-w)/2, 0), max((screenH-h)/2, 0)
}
