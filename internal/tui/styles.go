// Package tui provides the terminal user interface for andamio.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	palette *theme.Palette

	// Title bar
	TitleStyle lipgloss.Style

	// Header rows
	WeekHeaderStyle       lipgloss.Style
	DayHeaderStyle        lipgloss.Style
	DayHeaderWeekendStyle lipgloss.Style
	DayHeaderTodayStyle   lipgloss.Style

	// Label column
	LabelStyle         lipgloss.Style
	LabelSelectedStyle lipgloss.Style
	LabelDoneStyle     lipgloss.Style
	SeparatorStyle     lipgloss.Style

	// Track cells
	TrackStyle        lipgloss.Style
	TrackWeekendStyle lipgloss.Style
	TrackTodayStyle   lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	FilterStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.WeekHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.DayHeaderWeekendStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.DayHeaderTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorToday).
		Bold(true)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.LabelSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.LabelDoneStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Strikethrough(true)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.TrackStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.TrackWeekendStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight)

	s.TrackTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.FilterStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	return s
}

// BarStyle returns the bar style for a task's status. Done bars render in the
// muted variant so finished work recedes.
func (s *Styles) BarStyle(status task.Status) lipgloss.Style {
	c := s.palette.Bar(string(status))
	bg := c.Bg
	if status == task.StatusDone {
		bg = c.DoneBg
	}
	return lipgloss.NewStyle().Foreground(c.Text).Background(bg)
}
