package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/timeline"
)

// Cell classes for track rows, resolved to styles per run.
type cellClass int

const (
	cellPlain cellClass = iota
	cellWeekend
	cellToday
	cellBar
)

// View renders the board: title, week and day headers, one row per task, and
// a two-line footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.layout.TrackWidth < 10 || m.layout.TaskRows < 1 {
		return "Terminal too small"
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderTitle())
	rows = append(rows, m.renderWeekHeader())
	rows = append(rows, m.renderDayHeader())
	rows = append(rows, m.renderTaskRows()...)
	rows = append(rows, m.renderStatusLine())
	rows = append(rows, m.renderHelpLine())

	return strings.Join(rows, "\n")
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render("andamio")
	windowRange := fmt.Sprintf("%s .. %s",
		dateutil.FormatDate(m.window.Start),
		dateutil.FormatDate(m.window.End))
	if m.loading {
		windowRange = "loading..."
	}
	right := m.styles.HelpStyle.Render(windowRange + " ")

	gap := m.width - ansi.StringWidth(title) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return title + m.styles.StatusStyle.Render(strings.Repeat(" ", gap)) + right
}

// renderWeekHeader places each week bucket's d/m label at its day column.
func (m Model) renderWeekHeader() string {
	cells := make([]rune, m.layout.TrackWidth)
	for i := range cells {
		cells[i] = ' '
	}

	lastEnd := -1
	for _, wk := range m.grid.Weeks {
		offset := dateutil.DaysBetween(m.window.Start, wk.Date)
		col := m.layout.DayColumn(offset, m.grid.TotalDays)
		if col < 0 {
			col = 0
		}
		if col <= lastEnd || col+len(wk.Label) > len(cells) {
			continue
		}
		copy(cells[col:], []rune(wk.Label))
		lastEnd = col + len(wk.Label)
	}

	label := padTo("", m.layout.LabelWidth)
	return m.styles.DayHeaderStyle.Render(label) +
		m.styles.SeparatorStyle.Render("│") +
		m.styles.WeekHeaderStyle.Render(string(cells))
}

// renderDayHeader shows day-of-month numbers with weekend shading and a
// marker on today's column.
func (m Model) renderDayHeader() string {
	today := dateutil.TruncateToDay(m.nowFunc())

	var b strings.Builder
	for i, day := range m.grid.Days {
		col := m.layout.DayColumn(i, m.grid.TotalDays)
		next := m.layout.TrackWidth
		if i+1 < len(m.grid.Days) {
			next = m.layout.DayColumn(i+1, m.grid.TotalDays)
		}
		width := next - col
		if width <= 0 {
			continue
		}

		text := ""
		if width >= len(day.Label)+1 || width >= 2 {
			text = day.Label
		}
		text = padTo(text, width)

		style := m.styles.DayHeaderStyle
		switch {
		case day.Date.Equal(today):
			style = m.styles.DayHeaderTodayStyle
		case day.IsWeekend:
			style = m.styles.DayHeaderWeekendStyle
		}
		b.WriteString(style.Render(text))
	}

	label := padTo("", m.layout.LabelWidth)
	return m.styles.DayHeaderStyle.Render(label) +
		m.styles.SeparatorStyle.Render("│") +
		b.String()
}

func (m Model) renderTaskRows() []string {
	visible := m.visibleTasks()
	rows := make([]string, 0, m.layout.TaskRows)

	for row := 0; row < m.layout.TaskRows; row++ {
		idx := row + m.scrollOffset
		if idx >= len(visible) {
			rows = append(rows, m.renderEmptyRow())
			continue
		}
		rows = append(rows, m.renderTaskRow(visible[idx], idx == m.cursor))
	}
	return rows
}

func (m Model) renderEmptyRow() string {
	label := padTo("", m.layout.LabelWidth)
	return m.styles.LabelStyle.Render(label) +
		m.styles.SeparatorStyle.Render("│") +
		m.renderTrack(nil, -1, -1)
}

func (m Model) renderTaskRow(t *task.Task, selected bool) string {
	labelStyle := m.styles.LabelStyle
	switch {
	case selected:
		labelStyle = m.styles.LabelSelectedStyle
	case t.IsDone():
		labelStyle = m.styles.LabelDoneStyle
	}

	title := ansi.Truncate(t.Title, m.layout.LabelWidth-1, "…")
	label := labelStyle.Render(padTo(" "+title, m.layout.LabelWidth))

	pos := timeline.Position(m.window, m.grid.TotalDays, t)
	barStart, barWidth := m.layout.BarSpan(pos)

	return label +
		m.styles.SeparatorStyle.Render("│") +
		m.renderTrack(t, barStart, barWidth)
}

// renderTrack paints one track row: weekend shading beneath, the bar on top.
// Bars wide enough to resize show edge handles.
func (m Model) renderTrack(t *task.Task, barStart, barWidth int) string {
	classes := make([]cellClass, m.layout.TrackWidth)
	for i, day := range m.grid.Days {
		if !day.IsWeekend {
			continue
		}
		col := m.layout.DayColumn(i, m.grid.TotalDays)
		next := m.layout.TrackWidth
		if i+1 < len(m.grid.Days) {
			next = m.layout.DayColumn(i+1, m.grid.TotalDays)
		}
		for c := col; c < next && c < len(classes); c++ {
			classes[c] = cellWeekend
		}
	}

	chars := make([]rune, m.layout.TrackWidth)
	for i := range chars {
		chars[i] = ' '
	}

	// Today's column carries a dotted marker down every row.
	today := dateutil.TruncateToDay(m.nowFunc())
	if idx := dateutil.DaysBetween(m.window.Start, today); idx >= 0 && idx < len(m.grid.Days) {
		if col := m.layout.DayColumn(idx, m.grid.TotalDays); col < len(classes) {
			classes[col] = cellToday
			chars[col] = '┊'
		}
	}

	if t != nil && barStart >= 0 {
		for c := barStart; c < barStart+barWidth && c < len(chars); c++ {
			classes[c] = cellBar
			chars[c] = '░'
		}
		if barWidth > 2 {
			chars[barStart] = '▌'
			chars[barStart+barWidth-1] = '▐'
			for c := barStart + 1; c < barStart+barWidth-1; c++ {
				chars[c] = ' '
			}
		}
	}

	var barStyle = m.styles.TrackStyle
	if t != nil {
		barStyle = m.styles.BarStyle(t.Status)
	}

	// Render runs of equal class to keep escape sequences short.
	var b strings.Builder
	runStart := 0
	for i := 1; i <= len(classes); i++ {
		if i < len(classes) && classes[i] == classes[runStart] {
			continue
		}
		segment := string(chars[runStart:i])
		switch classes[runStart] {
		case cellBar:
			b.WriteString(barStyle.Render(segment))
		case cellToday:
			b.WriteString(m.styles.TrackTodayStyle.Render(segment))
		case cellWeekend:
			b.WriteString(m.styles.TrackWeekendStyle.Render(segment))
		default:
			b.WriteString(m.styles.TrackStyle.Render(segment))
		}
		runStart = i
	}
	return b.String()
}

func (m Model) renderStatusLine() string {
	if m.filtering {
		return m.styles.FilterStyle.Render(padTo(" /"+m.filter.Value()+"▌", m.width))
	}
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.err != nil && strings.HasPrefix(m.statusMsg, "Error") {
			style = m.styles.ErrorStyle
		}
		return style.Render(padTo(" "+m.statusMsg, m.width))
	}
	return m.styles.StatusStyle.Render(padTo("", m.width))
}

func (m Model) renderHelpLine() string {
	help := " drag bar to move · drag edges to resize · j/k select · s status · / filter · y yank id · r reload · q quit"
	if m.filter.Value() != "" && !m.filtering {
		help = fmt.Sprintf(" filter: %q (press / then esc to clear)%s", m.filter.Value(), help)
	}
	return m.styles.HelpStyle.Render(padTo(ansi.Truncate(help, m.width, "…"), m.width))
}

func padTo(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
