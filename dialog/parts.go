package dialog

import "github.com/charmbracelet/lipgloss"

type partKind int

const (
	partHeader partKind = iota
	partTitle
	partDescription
)

// Part is one of the layout leaves: header, title or description. Parts
// never touch the dialog state.
type Part struct {
	kind     partKind
	children []Node
	style    *lipgloss.Style
}

// NewHeader groups a title and description.
func NewHeader(children ...Node) *Part {
	return &Part{kind: partHeader, children: children}
}

func NewTitle(children ...Node) *Part {
	return &Part{kind: partTitle, children: children}
}

func NewDescription(children ...Node) *Part {
	return &Part{kind: partDescription, children: children}
}

// WithStyle extends the part's default style.
func (p *Part) WithStyle(s lipgloss.Style) *Part {
	p.style = &s
	return p
}

func (p *Part) baseStyle(t Theme) lipgloss.Style {
	switch p.kind {
	case partTitle:
		return t.Title
	case partDescription:
		return t.Description
	default:
		return t.Header
	}
}

func (p *Part) Render(ctx *RenderContext) (string, error) {
	st := p.baseStyle(ctx.Theme())
	if p.style != nil {
		st = extend(st, *p.style)
	}

	width := ctx.Width()
	if width > 0 {
		width -= st.GetHorizontalFrameSize()
	}
	inner := ctx.Child(width)
	body, err := renderChildren(inner, p.children)
	if err != nil {
		return "", err
	}
	dx, dy := frameOffset(st)
	ctx.Place(inner, dx, dy)
	return st.Render(body), nil
}
