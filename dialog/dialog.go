package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type options struct {
	open         *bool
	onOpenChange func(bool)
	children     []Node
	theme        Theme
	closeKeys    key.Binding
}

type Option func(*options)

// WithOpen hands ownership of the open flag to the caller.
func WithOpen(open bool) Option {
	return func(o *options) { o.open = &open }
}

// WithOnOpenChange is called with every requested open value. In
// uncontrolled mode it runs after the internal flag has changed.
func WithOnOpenChange(fn func(bool)) Option {
	return func(o *options) { o.onOpenChange = fn }
}

func WithChildren(children ...Node) Option {
	return func(o *options) { o.children = append(o.children, children...) }
}

func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithCloseKeys sets the keys that act like a backdrop click while the
// content is open. An empty binding disables them.
func WithCloseKeys(k key.Binding) Option {
	return func(o *options) { o.closeKeys = k }
}

// DefaultCloseKeys closes the dialog on esc.
func DefaultCloseKeys() key.Binding {
	return key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	)
}

// Dialog is the root of a dialog tree. It resolves who owns the open flag
// and exposes itself as the State of everything rendered beneath it.
type Dialog struct {
	store     store
	children  []Node
	theme     Theme
	closeKeys key.Binding

	screen *Screen
}

func New(opts ...Option) *Dialog {
	o := options{theme: DefaultTheme(), closeKeys: DefaultCloseKeys()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dialog{
		store:     newStore(o.open, o.onOpenChange),
		children:  o.children,
		theme:     o.theme,
		closeKeys: o.closeKeys,
	}
}

func (d *Dialog) IsOpen() bool { return d.store.read() }

// RequestOpen asks for a new open value. Controlled dialogs only pass the
// request on.
func (d *Dialog) RequestOpen(open bool) { d.store.write(open) }

// Controlled reports whether the caller owns the open flag.
func (d *Dialog) Controlled() bool { return d.store.controlled() }

// SetControlledOpen re-supplies the caller-owned open value. It has no
// effect on an uncontrolled dialog.
func (d *Dialog) SetControlledOpen(open bool) {
	if s, ok := d.store.(*externalStore); ok {
		s.supply(open)
	}
}

// Render implements Node, so a dialog can sit anywhere inside a larger tree.
func (d *Dialog) Render(ctx *RenderContext) (string, error) {
	cc := ctx.withState(d)
	cc.theme = d.theme
	cc.closeKeys = d.closeKeys
	out, err := renderChildren(cc, d.children)
	if err != nil {
		return "", err
	}
	ctx.Place(cc, 0, 0)
	return out, nil
}

// Screen returns the screen driving this dialog when it is the root of
// the program's view.
func (d *Dialog) Screen() *Screen {
	if d.screen == nil {
		d.screen = NewScreen(d)
	}
	return d.screen
}

func (d *Dialog) Init() tea.Cmd              { return nil }
func (d *Dialog) Update(msg tea.Msg) tea.Cmd { return d.Screen().Update(msg) }
func (d *Dialog) View() string               { return d.Screen().View() }

// Frame renders the dialog as a full frame.
func (d *Dialog) Frame() (string, error) { return d.Screen().Frame() }
