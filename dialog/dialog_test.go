package dialog

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// regionCentre finds the topmost region with id in the last frame.
func regionCentre(t *testing.T, s *Screen, id string) (int, int) {
	t.Helper()
	hm := s.Hits()
	for i := len(hm.regions) - 1; i >= 0; i-- {
		r := hm.regions[i]
		if r.ID == id {
			return r.Rect.X + r.Rect.W/2, r.Rect.Y + r.Rect.H/2
		}
	}
	t.Fatalf("no region %q in frame", id)
	return 0, 0
}

func frameText(t *testing.T, d *Dialog) string {
	t.Helper()
	out, err := d.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return ansi.Strip(out)
}

func clickRegion(t *testing.T, d *Dialog, id string) tea.Cmd {
	t.Helper()
	frameText(t, d)
	x, y := regionCentre(t, d.Screen(), id)
	return d.Update(press(x, y))
}

func newHelloDialog(opts ...Option) *Dialog {
	opts = append(opts, WithChildren(
		NewTrigger(Text("Open")),
		NewContent(Text("hello")),
	))
	d := New(opts...)
	d.Screen().SetSize(80, 24)
	return d
}

func TestOpenThenBackdropCloses(t *testing.T) {
	d := newHelloDialog()

	if d.IsOpen() {
		t.Fatalf("expected dialog to start closed")
	}
	if strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("content rendered while closed")
	}

	clickRegion(t, d, "trigger")
	if !d.IsOpen() {
		t.Fatalf("expected trigger click to open the dialog")
	}
	if !strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("content missing after open")
	}

	d.Update(press(0, 0))
	if d.IsOpen() {
		t.Fatalf("expected backdrop click to close the dialog")
	}
	if strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("content rendered after backdrop click")
	}
}

func TestToggleRepeatedly(t *testing.T) {
	d := newHelloDialog()
	for i := 0; i < 3; i++ {
		clickRegion(t, d, "trigger")
		if !d.IsOpen() {
			t.Fatalf("round %d: expected open", i)
		}
		d.Update(press(0, 0))
		if d.IsOpen() {
			t.Fatalf("round %d: expected closed", i)
		}
	}
}

func TestPanelClickKeepsOpen(t *testing.T) {
	d := newHelloDialog()
	clickRegion(t, d, "trigger")
	clickRegion(t, d, "panel")
	if !d.IsOpen() {
		t.Fatalf("click on the panel must not close the dialog")
	}
}

func TestTriggerInsidePanelIsIdempotent(t *testing.T) {
	var changes []bool
	d := New(
		WithOnOpenChange(func(v bool) { changes = append(changes, v) }),
		WithChildren(
			NewTrigger(Text("Open")),
			NewContent(
				NewTrigger(NewButton("Again", nil)).AsChild(),
			),
		),
	)
	d.Screen().SetSize(80, 24)

	clickRegion(t, d, "trigger")
	clickRegion(t, d, "button:Again")
	clickRegion(t, d, "button:Again")

	if !d.IsOpen() {
		t.Fatalf("expected dialog to stay open")
	}
	if len(changes) != 3 {
		t.Fatalf("expected 3 change notifications, got %v", changes)
	}
	for i, v := range changes {
		if !v {
			t.Fatalf("change %d: expected true, got false", i)
		}
	}
}

func TestControlledNeverSelfMutates(t *testing.T) {
	var requests []bool
	d := newHelloDialog(
		WithOpen(false),
		WithOnOpenChange(func(v bool) { requests = append(requests, v) }),
	)
	if !d.Controlled() {
		t.Fatalf("expected controlled dialog")
	}

	clickRegion(t, d, "trigger")
	if len(requests) != 1 || !requests[0] {
		t.Fatalf("expected one open request, got %v", requests)
	}
	if d.IsOpen() || strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("controlled dialog opened without the caller supplying the value")
	}

	d.SetControlledOpen(true)
	if !strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("content missing after caller supplied open=true")
	}

	d.Update(press(0, 0))
	if len(requests) != 2 || requests[1] {
		t.Fatalf("expected a close request, got %v", requests)
	}
	if !d.IsOpen() {
		t.Fatalf("controlled dialog closed without the caller supplying the value")
	}

	d.SetControlledOpen(false)
	if strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("content rendered after caller supplied open=false")
	}
}

func TestControlledOpenInitially(t *testing.T) {
	d := newHelloDialog(WithOpen(true))
	if !strings.Contains(frameText(t, d), "hello") {
		t.Fatalf("expected content for open=true")
	}
	// No change handler: the request goes nowhere.
	d.Update(press(0, 0))
	if !d.IsOpen() {
		t.Fatalf("controlled dialog without a handler must not close itself")
	}
}

func TestUncontrolledNotifiesAfterChange(t *testing.T) {
	var d *Dialog
	var seen []bool
	d = newHelloDialog(WithOnOpenChange(func(v bool) {
		if d.IsOpen() != v {
			t.Errorf("callback saw IsOpen=%v, want %v", d.IsOpen(), v)
		}
		seen = append(seen, v)
	}))
	if d.Controlled() {
		t.Fatalf("expected uncontrolled dialog")
	}
	clickRegion(t, d, "trigger")
	d.Update(press(0, 0))
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("unexpected notifications %v", seen)
	}
}

func TestSetControlledOpenIgnoredWhenUncontrolled(t *testing.T) {
	d := newHelloDialog()
	d.SetControlledOpen(true)
	if d.IsOpen() {
		t.Fatalf("SetControlledOpen must not affect an uncontrolled dialog")
	}
}

func TestAsChildRunsChildHandlerFirst(t *testing.T) {
	var order []string
	btn := NewButton("Copy", func(Event) tea.Cmd {
		order = append(order, "child")
		return nil
	})
	d := New(
		WithOnOpenChange(func(v bool) {
			if v {
				order = append(order, "open")
			}
		}),
		WithChildren(
			NewTrigger(btn).AsChild(),
			NewContent(Text("body")),
		),
	)
	d.Screen().SetSize(80, 24)

	for round := 1; round <= 3; round++ {
		clickRegion(t, d, "button:Copy")
		want := round * 2
		if len(order) != want {
			t.Fatalf("round %d: expected %d calls, got %v", round, want, order)
		}
		if order[want-2] != "child" || order[want-1] != "open" {
			t.Fatalf("round %d: wrong order %v", round, order)
		}
		d.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if d.IsOpen() {
			t.Fatalf("round %d: esc should close", round)
		}
	}

	// The original button is not modified by the trigger.
	order = nil
	btn.OnClick()(Event{})
	if len(order) != 1 || order[0] != "child" {
		t.Fatalf("original handler changed: %v", order)
	}
}

func TestAsChildWithoutClickableFallsBackToButton(t *testing.T) {
	d := New(WithChildren(
		NewTrigger(Text("plain")).AsChild(),
		NewContent(Text("body")),
	))
	d.Screen().SetSize(80, 24)
	clickRegion(t, d, "trigger")
	if !d.IsOpen() {
		t.Fatalf("expected fallback button to open the dialog")
	}
}

func TestKeyBindings(t *testing.T) {
	openKey := key.NewBinding(key.WithKeys("o"))
	d := New(WithChildren(
		NewTrigger(Text("Open")).WithKey(openKey),
		NewContent(Text("hello")),
	))
	d.Screen().SetSize(80, 24)

	d.Update(runeKey('x'))
	if d.IsOpen() {
		t.Fatalf("unbound key opened the dialog")
	}
	d.Update(runeKey('o'))
	if !d.IsOpen() {
		t.Fatalf("expected o to open the dialog")
	}
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsOpen() {
		t.Fatalf("expected esc to close the dialog")
	}
}

func TestCloseKeysCanBeDisabled(t *testing.T) {
	d := newHelloDialog(WithCloseKeys(key.NewBinding()))
	clickRegion(t, d, "trigger")
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !d.IsOpen() {
		t.Fatalf("esc closed the dialog with close keys disabled")
	}
}

func TestPageKeysInactiveWhileOpen(t *testing.T) {
	calls := 0
	page := NewButton("Other", func(Event) tea.Cmd {
		calls++
		return nil
	}).WithKey(key.NewBinding(key.WithKeys("p")))
	d := newHelloDialog(WithChildren(page))

	d.Update(runeKey('p'))
	if calls != 1 {
		t.Fatalf("expected page key to fire while closed, got %d", calls)
	}
	clickRegion(t, d, "trigger")
	d.Update(runeKey('p'))
	if calls != 1 {
		t.Fatalf("page key fired behind the open panel")
	}
}

func TestIgnoresOtherMouseEvents(t *testing.T) {
	d := newHelloDialog()
	frameText(t, d)
	x, y := regionCentre(t, d.Screen(), "trigger")
	d.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	d.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if d.IsOpen() {
		t.Fatalf("only a left press should activate the trigger")
	}
}

func TestWindowSizeAndOffset(t *testing.T) {
	d := New(WithChildren(NewTrigger(Text("Open")), NewContent(Text("hello"))))
	d.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	out := frameText(t, d)
	if out == "" {
		t.Fatalf("expected a frame")
	}

	d.Screen().SetOffset(2, 1)
	// The trigger is drawn at (2, 1) on the terminal now.
	d.Update(press(3, 1))
	if !d.IsOpen() {
		t.Fatalf("expected offset click to hit the trigger")
	}
	lines := strings.Split(frameText(t, d), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected a 20 line frame while open, got %d", len(lines))
	}
}

func TestOutsideDialog(t *testing.T) {
	for _, n := range []Node{NewTrigger(Text("x")), NewContent(Text("x"))} {
		ctx := NewRenderContext(40)
		for attempt := 0; attempt < 2; attempt++ {
			_, err := n.Render(ctx)
			if !errors.Is(err, ErrOutsideDialog) {
				t.Fatalf("attempt %d: expected ErrOutsideDialog, got %v", attempt, err)
			}
		}
	}
}

func TestScreenReportsMisuse(t *testing.T) {
	s := NewScreen(Stack(Text("page"), NewTrigger(Text("x"))))
	if _, err := s.Frame(); !errors.Is(err, ErrOutsideDialog) {
		t.Fatalf("expected ErrOutsideDialog, got %v", err)
	}
	if v := s.View(); !strings.Contains(v, "DialogTrigger must be used within Dialog") {
		t.Fatalf("unexpected view %q", v)
	}
	if cmd := s.Update(press(0, 0)); cmd != nil {
		t.Fatalf("expected no command after failed render")
	}
}
