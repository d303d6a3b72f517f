package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Node is anything that can be rendered inside a dialog tree.
type Node interface {
	Render(ctx *RenderContext) (string, error)
}

// Event describes an activation: a mouse press at X, Y or a key press.
type Event struct {
	X, Y int
	Msg  tea.Msg
}

// Handler reacts to an activation.
type Handler func(Event) tea.Cmd

// Compose returns a handler running first and then second with the same
// event. Either may be nil.
func Compose(first, second Handler) Handler {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(e Event) tea.Cmd {
		c1 := first(e)
		c2 := second(e)
		return tea.Batch(c1, c2)
	}
}

// Clickable is a node carrying its own click handler. Trigger in as-child
// mode clones it with an extra handler instead of wrapping it.
type Clickable interface {
	Node
	OnClick() Handler
	WithOnClick(h Handler) Clickable
}

type textNode struct {
	s string
}

// Text is a plain text leaf, word-wrapped to the available width.
func Text(s string) Node { return textNode{s: s} }

func (t textNode) Render(ctx *RenderContext) (string, error) {
	if ctx.Width() > 0 {
		return wordwrap.String(t.s, ctx.Width()), nil
	}
	return t.s, nil
}

type stackNode struct {
	children []Node
}

// Stack renders children top to bottom.
func Stack(children ...Node) Node { return stackNode{children: children} }

func (s stackNode) Render(ctx *RenderContext) (string, error) {
	return renderChildren(ctx, s.children)
}

// renderChildren stacks children vertically, placing each child's regions
// at its row offset. Empty renders take no rows.
func renderChildren(ctx *RenderContext, children []Node) (string, error) {
	var parts []string
	y := 0
	for _, child := range children {
		if child == nil {
			continue
		}
		cc := ctx.Child(ctx.Width())
		out, err := child.Render(cc)
		if err != nil {
			return "", err
		}
		ctx.Place(cc, 0, y)
		if out == "" {
			continue
		}
		parts = append(parts, out)
		y += lipgloss.Height(out)
	}
	return strings.Join(parts, "\n"), nil
}

type rowNode struct {
	gap      int
	children []Node
}

// Row renders children left to right separated by gap columns.
func Row(gap int, children ...Node) Node {
	if gap < 0 {
		gap = 0
	}
	return rowNode{gap: gap, children: children}
}

func (r rowNode) Render(ctx *RenderContext) (string, error) {
	var parts []string
	x := 0
	for _, child := range r.children {
		if child == nil {
			continue
		}
		cc := ctx.Child(0)
		out, err := child.Render(cc)
		if err != nil {
			return "", err
		}
		ctx.Place(cc, x, 0)
		if out == "" {
			continue
		}
		if len(parts) > 0 && r.gap > 0 {
			parts = append(parts, strings.Repeat(" ", r.gap))
		}
		parts = append(parts, out)
		x += lipgloss.Width(out) + r.gap
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), nil
}

// Button is a clickable label.
type Button struct {
	label   string
	onClick Handler
	style   *lipgloss.Style
	binding *key.Binding
}

func NewButton(label string, onClick Handler) *Button {
	return &Button{label: label, onClick: onClick}
}

// WithStyle extends the theme's button style.
func (b *Button) WithStyle(s lipgloss.Style) *Button {
	b.style = &s
	return b
}

// WithKey makes presses of k activate the button.
func (b *Button) WithKey(k key.Binding) *Button {
	b.binding = &k
	return b
}

func (b *Button) OnClick() Handler { return b.onClick }

// WithOnClick returns a copy of the button with h as its handler. The
// receiver is left untouched.
func (b *Button) WithOnClick(h Handler) Clickable {
	clone := *b
	clone.onClick = h
	return &clone
}

func (b *Button) Render(ctx *RenderContext) (string, error) {
	st := ctx.Theme().Button
	if b.style != nil {
		st = extend(st, *b.style)
	}
	out := st.Render(b.label)
	ctx.AddRegion("button:"+b.label, Rect{W: lipgloss.Width(out), H: lipgloss.Height(out)}, b.onClick)
	if b.binding != nil {
		ctx.BindKey(*b.binding, b.onClick)
	}
	return out, nil
}
