package main

import (
	"github.com/charmbracelet/lipgloss"
)

func (m *model) footerView(width int) string {
	st := FooterState{
		Open:       m.main.IsOpen(),
		Controlled: m.main.Controlled(),
		Title:      m.opts.title,
		Requests:   m.requests,
		Legend:     m.keys.ShortHelpView(Keys.Legend()),
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" && m.help.IsOpen() {
		st.StatusMessage = "help"
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	w, h := m.ui.terminalWidth, max(m.ui.terminalHeight-footerHeight, 1)
	body := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, m.screen.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(w))
}
