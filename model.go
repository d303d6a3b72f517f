package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-dialog/clipboard"
	"github.com/andareed/siftly-dialog/dialog"
	"github.com/andareed/siftly-dialog/logging"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const pageIntro = "Click a button (or use the keys below) to open the dialog. " +
	"Click anywhere outside the panel, or press esc, to close it."

type appOptions struct {
	controlled  bool
	title       string
	description string
	theme       dialog.Theme
}

type copiedMsg struct{ err error }

type model struct {
	opts   appOptions
	main   *dialog.Dialog
	help   *dialog.Dialog
	screen *dialog.Screen
	keys   help.Model
	ready  bool
	ui     uiState

	// open is the model-owned flag in controlled mode.
	open     bool
	requests int
}

func newModel(o appOptions) *model {
	m := &model{opts: o, keys: help.New()}

	copyOpen := dialog.NewButton("Copy & open", func(dialog.Event) tea.Cmd {
		return copyCmd(o.description)
	}).WithKey(Keys.CopyOpen)

	closeBtn := dialog.NewButton("Close", func(dialog.Event) tea.Cmd {
		m.main.RequestOpen(false)
		return nil
	})

	mainOpts := []dialog.Option{
		dialog.WithTheme(o.theme),
		dialog.WithCloseKeys(Keys.Close),
		dialog.WithOnOpenChange(m.onOpenChange),
	}
	if o.controlled {
		mainOpts = append(mainOpts, dialog.WithOpen(m.open))
	}
	mainOpts = append(mainOpts, dialog.WithChildren(
		dialog.Row(2,
			dialog.NewTrigger(dialog.Text("Open dialog")).WithKey(Keys.Open),
			dialog.NewTrigger(copyOpen).AsChild(),
		),
		dialog.NewContent(
			dialog.NewHeader(
				dialog.NewTitle(dialog.Text(o.title)),
				dialog.NewDescription(dialog.Text(o.description)),
			),
			closeBtn,
		),
	))
	m.main = dialog.New(mainOpts...)

	m.help = dialog.New(
		dialog.WithTheme(o.theme),
		dialog.WithCloseKeys(Keys.Close),
		dialog.WithChildren(
			dialog.NewTrigger(dialog.Text("Help")).WithKey(Keys.OpenHelp),
			dialog.NewContent(
				dialog.NewHeader(dialog.NewTitle(dialog.Text("Keys"))),
				dialog.Text(helpLines(Keys.Legend())),
			),
		),
	)

	m.screen = dialog.NewScreen(dialog.Stack(
		dialog.NewTitle(dialog.Text("siftly-dialog")).WithStyle(pageTitleStyle),
		dialog.NewDescription(dialog.Text(pageIntro)).WithStyle(pageTextStyle),
		m.main,
		m.help,
	))
	return m
}

// onOpenChange sees every open request of the main dialog. In controlled
// mode the model accepts it and re-supplies the value after the update.
func (m *model) onOpenChange(open bool) {
	m.requests++
	logging.Debugf("model: open request #%d -> %v (controlled=%v)", m.requests, open, m.opts.controlled)
	if m.opts.controlled {
		m.open = open
	}
}

func (m *model) syncControlled() {
	if m.opts.controlled {
		m.main.SetControlledOpen(m.open)
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-dialog: Initialised (controlled=%v)", m.opts.controlled)
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.terminalWidth, m.ui.terminalHeight = msg.Width, msg.Height
		m.screen.SetSize(msg.Width, max(msg.Height-footerHeight, 1))
		// leave the left half of the status bar for notices
		m.keys.Width = msg.Width / 2
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("model: copy failed: %v", msg.err)
			return m, m.startNotice("copy failed: "+msg.err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("description copied", "success", noticeDuration)

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	}

	cmd := m.screen.Update(msg)
	m.syncControlled()
	return m, cmd
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.Copy(text)}
	}
}

func helpLines(bindings []key.Binding) string {
	var lines []string
	for _, b := range bindings {
		h := b.Help()
		line := helpKeyStyle.Render(fmt.Sprintf("%-12s", h.Key)) + " " + helpDescStyle.Render(h.Desc)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
