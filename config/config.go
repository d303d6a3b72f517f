package config

import (
	"fmt"
	"os"

	"github.com/andareed/siftly-dialog/dialog"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme file format. Colours are anything lipgloss.Color accepts: ANSI
// numbers ("236") or hex ("#3a3a3a"). Empty fields keep the default.
//
//	panel:
//	  width: 60
//	  border: "252"
//	backdrop:
//	  fg: "240"
//	  bg: "236"
//	title:
//	  fg: "212"
//	description:
//	  fg: "245"
type Theme struct {
	Panel struct {
		Width  int    `yaml:"width"`
		Margin int    `yaml:"margin"`
		Border string `yaml:"border"`
		FG     string `yaml:"fg"`
		BG     string `yaml:"bg"`
	} `yaml:"panel"`
	Backdrop    Colors `yaml:"backdrop"`
	Title       Colors `yaml:"title"`
	Description Colors `yaml:"description"`
	Button      Colors `yaml:"button"`
}

type Colors struct {
	FG string `yaml:"fg"`
	BG string `yaml:"bg"`
}

func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme YAML: %w", err)
	}
	if t.Panel.Width < 0 || t.Panel.Margin < 0 {
		return nil, fmt.Errorf("theme: panel width and margin must not be negative")
	}
	return &t, nil
}

// Apply overlays the file's settings onto base.
func (t *Theme) Apply(base dialog.Theme) dialog.Theme {
	if t == nil {
		return base
	}
	if t.Panel.Width > 0 {
		base.PanelWidth = t.Panel.Width
	}
	if t.Panel.Margin > 0 {
		base.PanelMargin = t.Panel.Margin
	}
	if t.Panel.Border != "" {
		base.Panel = base.Panel.BorderForeground(lipgloss.Color(t.Panel.Border))
	}
	base.Panel = applyColors(base.Panel, Colors{FG: t.Panel.FG, BG: t.Panel.BG})
	base.Backdrop = applyColors(base.Backdrop, t.Backdrop)
	base.Title = applyColors(base.Title, t.Title)
	base.Description = applyColors(base.Description, t.Description)
	base.Button = applyColors(base.Button, t.Button)
	return base
}

func applyColors(s lipgloss.Style, c Colors) lipgloss.Style {
	if c.FG != "" {
		s = s.Foreground(lipgloss.Color(c.FG))
	}
	if c.BG != "" {
		s = s.Background(lipgloss.Color(c.BG))
	}
	return s
}
