package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type styles struct {
	title    lipgloss.Style
	accent   lipgloss.Style
	quantity lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	editing  lipgloss.Style
	help     lipgloss.Style
	label    lipgloss.Style
	border   lipgloss.Color
	toast    lipgloss.Style
	frame    lipgloss.Border
}

// newStyles follows the ui theme so the TUI and the quit summary match.
func newStyles(t ui.Theme) styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		quantity: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		editing:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),
		help:     lipgloss.NewStyle().Faint(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		border:   lipgloss.Color("8"),
		frame:    lipgloss.RoundedBorder(),
	}
	switch t.Name {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("201"))
		s.accent = s.accent.Foreground(lipgloss.Color("51"))
		s.quantity = s.quantity.Foreground(lipgloss.Color("226"))
		s.border = lipgloss.Color("201")
	case "mono":
		plain := lipgloss.NewStyle()
		s.accent, s.quantity, s.editing, s.label = plain, plain, plain, plain
		s.border = lipgloss.Color("")
		s.frame = lipgloss.NormalBorder()
	default:
		// add button blue
		s.border = lipgloss.Color("#495D91")
	}
	s.toast = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(s.border)
	return s
}

func (s styles) box() lipgloss.Style {
	return lipgloss.NewStyle().Border(s.frame).BorderForeground(s.border).Padding(0, 1)
}
