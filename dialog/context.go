package dialog

import "github.com/charmbracelet/bubbles/key"

type keyHandler struct {
	binding key.Binding
	handler Handler
}

// RenderContext carries what a node needs while rendering: the enclosing
// dialog's State, the theme, the width available to it, and the sinks for
// hit regions, key bindings and overlays.
//
// Regions are recorded relative to the node's own top-left corner. A parent
// renders each child into a Child context and then calls Place with the
// child's offset.
type RenderContext struct {
	state     State
	theme     Theme
	width     int
	screenW   int
	screenH   int
	closeKeys key.Binding

	hits     *HitMap
	keys     []keyHandler
	overlays *[]*overlay
}

// NewRenderContext returns a context with no enclosing dialog. Width 0
// disables wrapping.
func NewRenderContext(width int) *RenderContext {
	return &RenderContext{
		theme:    DefaultTheme(),
		width:    width,
		hits:     NewHitMap(),
		overlays: new([]*overlay),
	}
}

// State returns the enclosing dialog's state, if any.
func (c *RenderContext) State() (State, bool) {
	if c.state == nil {
		return nil, false
	}
	return c.state, true
}

func (c *RenderContext) Width() int   { return c.width }
func (c *RenderContext) Theme() Theme { return c.theme }
func (c *RenderContext) Hits() *HitMap {
	return c.hits
}

// AddRegion records a clickable rectangle relative to this context.
func (c *RenderContext) AddRegion(id string, r Rect, h Handler) {
	c.hits.Add(id, r, h)
}

// BindKey routes presses matching b to h while this context's layer is on top.
func (c *RenderContext) BindKey(b key.Binding, h Handler) {
	if h == nil || len(b.Keys()) == 0 {
		return
	}
	c.keys = append(c.keys, keyHandler{binding: b, handler: h})
}

// Child returns a context for a nested node with its own regions and keys.
func (c *RenderContext) Child(width int) *RenderContext {
	if width < 0 {
		width = 0
	}
	return &RenderContext{
		state:     c.state,
		theme:     c.theme,
		width:     width,
		screenW:   c.screenW,
		screenH:   c.screenH,
		closeKeys: c.closeKeys,
		hits:      NewHitMap(),
		overlays:  c.overlays,
	}
}

// Place merges a child's regions at offset (dx, dy) and adopts its keys.
func (c *RenderContext) Place(child *RenderContext, dx, dy int) {
	c.hits.merge(child.hits, dx, dy)
	c.keys = append(c.keys, child.keys...)
}

func (c *RenderContext) withState(s State) *RenderContext {
	cc := c.Child(c.width)
	cc.state = s
	return cc
}

// reserveOverlay claims a stacking slot before the overlay's own children
// render, so a dialog opened from inside a panel stacks above it.
func (c *RenderContext) reserveOverlay() int {
	*c.overlays = append(*c.overlays, nil)
	return len(*c.overlays) - 1
}

func (c *RenderContext) setOverlay(slot int, o *overlay) {
	(*c.overlays)[slot] = o
}

func (c *RenderContext) activeOverlays() []*overlay {
	var out []*overlay
	for _, o := range *c.overlays {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}
