package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const footerHeight = 2

type FooterState struct {
	Open       bool
	Controlled bool
	Title      string
	Requests   int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	OpenPillBG lipgloss.Color
	ShutPillBG lipgloss.Color
	PillFG     lipgloss.Color
	TitleFG    lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		OpenPillBG: lipgloss.Color("#ff9f1c"),
		ShutPillBG: lipgloss.Color("#6c757d"),
		PillFG:     lipgloss.Color("#000000"),
		TitleFG:    lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(o open · ? help · q quit)"
	}
	if st.Requests < 0 {
		st.Requests = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" Requests %d", st.Requests)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := textWidth(rightPlain)

	leftW := max(width-rightW, 0)

	pillText := stateLabel(st.Open)
	pillW := min(textWidth(pillText)+2, leftW)
	ownerPlain := fmt.Sprintf("[%s]", ownerLabel(st.Controlled))
	ownerW := min(textWidth(ownerPlain), max(leftW-pillW-gapW, 0))
	titleW := max(leftW-pillW-ownerW-2*gapW, 0)

	pill := renderPill(pillW, st, styles)
	title := renderTitleSegment(titleW, st, styles)
	owner := applyFG(padRightPlain(truncatePlain(ownerPlain, ownerW), ownerW), styles.DimFG, styles.TextFG)

	left := pill + strings.Repeat(" ", gapW) + title + strings.Repeat(" ", gapW) + owner
	left = padRightPlain(truncatePlain(left, leftW), leftW)
	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := textWidth(legendPlain)

	leftW := max(width-legendW, 0)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderPill(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	bg := styles.ShutPillBG
	if st.Open {
		bg = styles.OpenPillBG
	}
	pillPlain := truncatePlain(" "+stateLabel(st.Open)+" ", colW)
	pad := strings.Repeat(" ", colW-textWidth(pillPlain))
	return ansiBg(bg) + ansiFg(styles.PillFG) + pillPlain + ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
}

func renderTitleSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.Title)
	if name == "" {
		name = "(untitled)"
	}
	plain := padRightPlain(truncatePlain("▸ "+name, colW), colW)
	return applyFG(plain, styles.TitleFG, styles.TextFG)
}

func stateLabel(open bool) string {
	if open {
		return "OPEN"
	}
	return "CLOSED"
}

func ownerLabel(controlled bool) string {
	if controlled {
		return "controlled"
	}
	return "uncontrolled"
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + "0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	if noColor {
		return ""
	}
	value := string(c)
	if value == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(isBg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := textWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

func textWidth(s string) int {
	return ansi.StringWidth(s)
}
