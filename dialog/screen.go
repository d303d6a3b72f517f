package dialog

import (
	"github.com/andareed/siftly-dialog/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen renders a node tree as a full frame and routes mouse and key
// messages to the handlers the last render recorded. Open dialog panels
// are composited over a dimmed copy of the page.
type Screen struct {
	root Node

	width, height    int
	offsetX, offsetY int

	hits *HitMap
	keys []keyHandler
}

func NewScreen(root Node) *Screen {
	return &Screen{root: root, hits: NewHitMap()}
}

// SetSize sets the viewport. Zero dimensions mean "size to content".
func (s *Screen) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetOffset tells the screen where its frame is drawn on the terminal, so
// mouse coordinates can be translated.
func (s *Screen) SetOffset(x, y int) {
	s.offsetX, s.offsetY = x, y
}

// Hits returns the regions of the last rendered frame.
func (s *Screen) Hits() *HitMap { return s.hits }

// Frame renders the tree and records its regions and key bindings.
func (s *Screen) Frame() (string, error) {
	ctx := NewRenderContext(s.width)
	ctx.screenW, ctx.screenH = s.width, s.height

	base, err := s.root.Render(ctx)
	if err != nil {
		s.hits = NewHitMap()
		s.keys = nil
		return "", err
	}

	overlays := ctx.activeOverlays()
	if len(overlays) == 0 {
		s.hits = ctx.Hits()
		s.keys = ctx.keys
		return base, nil
	}

	w, h := s.width, s.height
	if w <= 0 {
		w = lipgloss.Width(base)
		for _, o := range overlays {
			w = max(w, o.width)
		}
	}
	if h <= 0 {
		h = lipgloss.Height(base)
		for _, o := range overlays {
			h = max(h, o.height)
		}
	}

	top := overlays[len(overlays)-1]
	view := dimView(base, w, h, top.backdrop)
	hits := ctx.Hits()
	for _, o := range overlays {
		ax, ay := centre(w, h, o.width, o.height)
		view = spliceOverlay(view, o.panel, ax, ay)
		hits.Add("backdrop", Rect{W: w, H: h}, o.dismiss)
		hits.merge(o.hits, ax, ay)
	}
	s.hits = hits
	s.keys = top.keys
	return view, nil
}

// View is Frame for Bubble Tea. A render error is logged and shown in
// place of the frame.
func (s *Screen) View() string {
	out, err := s.Frame()
	if err != nil {
		logging.Warnf("dialog: render failed: %v", err)
		return "error: " + err.Error()
	}
	return out
}

func (s *Screen) Init() tea.Cmd { return nil }

// Update handles window size, left mouse presses and key presses. The
// tree is re-rendered first so handlers always match what is on screen.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if _, err := s.Frame(); err != nil {
			logging.Warnf("dialog: click ignored: %v", err)
			return nil
		}
		x, y := msg.X-s.offsetX, msg.Y-s.offsetY
		r := s.hits.Test(x, y)
		if r == nil || r.Handler == nil {
			return nil
		}
		logging.Debugf("dialog: click on %s at %d,%d", r.ID, x, y)
		return r.Handler(Event{X: x, Y: y, Msg: msg})

	case tea.KeyMsg:
		if _, err := s.Frame(); err != nil {
			logging.Warnf("dialog: key ignored: %v", err)
			return nil
		}
		for _, kh := range s.keys {
			if key.Matches(msg, kh.binding) {
				logging.Debugf("dialog: key %q", msg.String())
				return kh.handler(Event{Msg: msg})
			}
		}
	}
	return nil
}
