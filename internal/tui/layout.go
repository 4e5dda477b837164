package tui

import (
	"math"

	"github.com/tcastillo/andamio/internal/timeline"
)

// Fixed chrome rows: title, week header, day header on top; status and help
// at the bottom.
const (
	headerRows = 3
	footerRows = 2
)

// Layout describes the terminal geometry of the board. The label column is
// fixed width; the track (the draggable surface) takes the rest.
type Layout struct {
	Width      int
	Height     int
	LabelWidth int
	TrackLeft  int // first terminal column of the track
	TrackWidth int
	TaskRows   int // visible task rows between header and footer
}

// NewLayout computes the board geometry for a terminal size.
func NewLayout(width, height, labelWidth int) Layout {
	trackLeft := labelWidth + 1 // one separator column
	trackWidth := width - trackLeft
	if trackWidth < 0 {
		trackWidth = 0
	}
	taskRows := height - headerRows - footerRows
	if taskRows < 0 {
		taskRows = 0
	}
	return Layout{
		Width:      width,
		Height:     height,
		LabelWidth: labelWidth,
		TrackLeft:  trackLeft,
		TrackWidth: trackWidth,
		TaskRows:   taskRows,
	}
}

// PixelsPerDay is the drag scale: track cells per calendar day. Zero when the
// track has no room, which the drag controller treats as a session-ending
// guard.
func (l Layout) PixelsPerDay(totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	return float64(l.TrackWidth) / float64(totalDays)
}

// RowAt maps a terminal y coordinate to a task index, accounting for scroll.
func (l Layout) RowAt(y, scrollOffset, taskCount int) (int, bool) {
	row := y - headerRows
	if row < 0 || row >= l.TaskRows {
		return 0, false
	}
	idx := row + scrollOffset
	if idx < 0 || idx >= taskCount {
		return 0, false
	}
	return idx, true
}

// OnTrack reports whether a terminal coordinate lies on the drag surface:
// the track columns of the visible task rows.
func (l Layout) OnTrack(x, y int) bool {
	if x < l.TrackLeft || x >= l.Width {
		return false
	}
	return y >= headerRows && y < headerRows+l.TaskRows
}

// BarSpan converts a mapped bar position into track cells. The result always
// has at least one cell and stays inside the track.
func (l Layout) BarSpan(pos timeline.BarPosition) (start, width int) {
	start = int(math.Floor(pos.LeftPercent / 100 * float64(l.TrackWidth)))
	width = int(math.Round(pos.WidthPercent / 100 * float64(l.TrackWidth)))
	if width < 1 {
		width = 1
	}
	if start < 0 {
		start = 0
	}
	if start > l.TrackWidth-1 {
		start = l.TrackWidth - 1
	}
	if start+width > l.TrackWidth {
		width = l.TrackWidth - start
	}
	if width < 1 {
		width = 1
	}
	return start, width
}

// DayColumn returns the first track cell of the i-th day in the window.
func (l Layout) DayColumn(dayIndex, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return dayIndex * l.TrackWidth / totalDays
}

// Affordance maps a press on a bar to a drag mode: the left edge cell grabs
// the start, the right edge cell grabs the end, anywhere else moves the whole
// span. Bars too small to expose edges always move.
func Affordance(trackX, barStart, barWidth int) (timeline.Mode, bool) {
	if trackX < barStart || trackX >= barStart+barWidth {
		return "", false
	}
	if barWidth <= 2 {
		return timeline.ModeMove, true
	}
	switch trackX {
	case barStart:
		return timeline.ModeResizeStart, true
	case barStart + barWidth - 1:
		return timeline.ModeResizeEnd, true
	default:
		return timeline.ModeMove, true
	}
}
