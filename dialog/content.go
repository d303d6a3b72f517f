package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Content is the modal panel. It renders nothing while the dialog is
// closed. While open it registers an overlay: a full-screen backdrop that
// closes the dialog when clicked, and the panel above it.
type Content struct {
	children []Node
	style    *lipgloss.Style
}

func NewContent(children ...Node) *Content {
	return &Content{children: children}
}

// WithStyle is merged onto the theme's panel style.
func (c *Content) WithStyle(s lipgloss.Style) *Content {
	c.style = &s
	return c
}

func (c *Content) Render(ctx *RenderContext) (string, error) {
	state, ok := ctx.State()
	if !ok {
		return "", outsideDialog("DialogContent")
	}
	if !state.IsOpen() {
		return "", nil
	}
	slot := ctx.reserveOverlay()

	theme := ctx.Theme()
	st := theme.Panel
	if c.style != nil {
		st = extend(st, *c.style)
	}
	if c.style == nil || c.style.GetWidth() == 0 {
		outer := panelWidth(theme, ctx.screenW)
		st = st.Width(max(outer-st.GetHorizontalBorderSize()-st.GetHorizontalMargins(), 1))
	}
	innerW := st.GetWidth() - st.GetHorizontalPadding()

	inner := ctx.Child(max(innerW, 1))
	body, err := renderChildren(inner, c.children)
	if err != nil {
		return "", err
	}
	panel := st.Render(body)
	pw, ph := lipgloss.Width(panel), lipgloss.Height(panel)

	dismiss := func(Event) tea.Cmd {
		state.RequestOpen(false)
		return nil
	}

	hits := NewHitMap()
	// Clicks on the panel itself must not reach the backdrop.
	hits.Add("panel", Rect{W: pw, H: ph}, nil)
	dx, dy := frameOffset(st)
	hits.merge(inner.hits, dx, dy)

	keys := append([]keyHandler(nil), inner.keys...)
	if len(ctx.closeKeys.Keys()) > 0 {
		keys = append(keys, keyHandler{binding: ctx.closeKeys, handler: dismiss})
	}

	ctx.setOverlay(slot, &overlay{
		panel:    panel,
		width:    pw,
		height:   ph,
		backdrop: theme.Backdrop,
		hits:     hits,
		keys:     keys,
		dismiss:  dismiss,
	})
	return "", nil
}

// panelWidth is the panel's outer width on a screen screenW columns wide.
// Zero means the screen size is not known yet.
func panelWidth(t Theme, screenW int) int {
	w := t.PanelWidth
	if w <= 0 {
		w = defaultPanelWidth
	}
	if screenW > 0 {
		w = min(w, screenW-2*t.PanelMargin)
	}
	return max(w, 4)
}
