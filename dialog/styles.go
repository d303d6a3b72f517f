package dialog

import "github.com/charmbracelet/lipgloss"

const (
	defaultPanelWidth  = 50
	defaultPanelMargin = 2
)

// Theme holds the default style of every part. A caller style passed to a
// part is layered on top: what the caller sets wins, the rest comes from
// the theme.
type Theme struct {
	Backdrop    lipgloss.Style
	Panel       lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Button      lipgloss.Style

	// PanelWidth is the widest the panel gets, border included. On narrow
	// screens the panel shrinks to leave PanelMargin columns on each side.
	PanelWidth  int
	PanelMargin int
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Backdrop: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("236")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")).
			Padding(1, 2),
		Header: lipgloss.NewStyle().MarginBottom(1),
		Title:  lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		PanelWidth:  defaultPanelWidth,
		PanelMargin: defaultPanelMargin,
	}
}

// frameOffset is where content starts inside a box drawn with s.
func frameOffset(s lipgloss.Style) (x, y int) {
	x = s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
	y = s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
	return x, y
}

// extend layers a caller style over a default one. Inherit skips padding
// and margins, so those are carried over by hand; a zero caller value
// keeps the default.
func extend(base, over lipgloss.Style) lipgloss.Style {
	pick := func(o, b int) int {
		if o != 0 {
			return o
		}
		return b
	}
	return over.Inherit(base).
		PaddingTop(pick(over.GetPaddingTop(), base.GetPaddingTop())).
		PaddingRight(pick(over.GetPaddingRight(), base.GetPaddingRight())).
		PaddingBottom(pick(over.GetPaddingBottom(), base.GetPaddingBottom())).
		PaddingLeft(pick(over.GetPaddingLeft(), base.GetPaddingLeft())).
		MarginTop(pick(over.GetMarginTop(), base.GetMarginTop())).
		MarginRight(pick(over.GetMarginRight(), base.GetMarginRight())).
		MarginBottom(pick(over.GetMarginBottom(), base.GetMarginBottom())).
		MarginLeft(pick(over.GetMarginLeft(), base.GetMarginLeft()))
}
