package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Trigger asks the dialog to open when activated.
type Trigger struct {
	children []Node
	asChild  bool
	binding  *key.Binding
	style    *lipgloss.Style
}

// NewTrigger wraps children in a button that opens the dialog.
func NewTrigger(children ...Node) *Trigger {
	return &Trigger{children: children}
}

// AsChild renders the single Clickable child itself instead of a wrapping
// button. The child's own handler still runs, before the open request.
func (t *Trigger) AsChild() *Trigger {
	t.asChild = true
	return t
}

// WithKey makes presses of k activate the trigger.
func (t *Trigger) WithKey(k key.Binding) *Trigger {
	t.binding = &k
	return t
}

// WithStyle extends the default button style. Ignored in as-child mode.
func (t *Trigger) WithStyle(s lipgloss.Style) *Trigger {
	t.style = &s
	return t
}

func (t *Trigger) Render(ctx *RenderContext) (string, error) {
	state, ok := ctx.State()
	if !ok {
		return "", outsideDialog("DialogTrigger")
	}
	open := func(Event) tea.Cmd {
		state.RequestOpen(true)
		return nil
	}

	if c, ok := t.clickableChild(); ok {
		// The child is cloned each frame so handlers never stack up.
		clone := c.WithOnClick(Compose(c.OnClick(), open))
		out, err := clone.Render(ctx)
		if err != nil {
			return "", err
		}
		if t.binding != nil {
			ctx.BindKey(*t.binding, clone.OnClick())
		}
		return out, nil
	}

	st := ctx.Theme().Button
	if t.style != nil {
		st = extend(st, *t.style)
	}
	inner := ctx.Child(0)
	body, err := renderChildren(inner, t.children)
	if err != nil {
		return "", err
	}
	out := st.Render(body)
	dx, dy := frameOffset(st)
	ctx.Place(inner, dx, dy)
	// The button sits above its children, like a click bubbling to it.
	ctx.AddRegion("trigger", Rect{W: lipgloss.Width(out), H: lipgloss.Height(out)}, open)
	if t.binding != nil {
		ctx.BindKey(*t.binding, open)
	}
	return out, nil
}

func (t *Trigger) clickableChild() (Clickable, bool) {
	if !t.asChild || len(t.children) != 1 {
		return nil, false
	}
	c, ok := t.children[0].(Clickable)
	return c, ok
}
