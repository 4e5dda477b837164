package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	mutedColor  = color.New(color.FgHiBlack)
	dateColor   = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
	statusColor = map[task.Status]*color.Color{
		task.StatusNotStarted: color.New(color.FgWhite),
		task.StatusInProgress: color.New(color.FgBlue),
		task.StatusWaiting:    color.New(color.FgYellow),
		task.StatusBlocked:    color.New(color.FgRed),
		task.StatusDone:       color.New(color.FgGreen),
	}
)

// termWidth returns the terminal width, or a sane default when stdout is not
// a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// statusText renders a status with its color and symbol.
func statusText(s task.Status) string {
	c, ok := statusColor[s]
	if !ok {
		c = mutedColor
	}
	return c.Sprintf("%s %s", statusSymbol(s), s)
}

func statusSymbol(s task.Status) string {
	switch s {
	case task.StatusDone:
		return "✓"
	case task.StatusInProgress:
		return "◐"
	case task.StatusWaiting:
		return "◷"
	case task.StatusBlocked:
		return "✗"
	default:
		return "○"
	}
}

// shortID returns the first eight characters of an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDates renders a task's schedule as "[start → due]". Missing dates
// show as a dash.
func formatDates(t *task.Task) string {
	if !t.HasDates() {
		return mutedColor.Sprint("[unscheduled]")
	}
	return fmt.Sprintf("[%s → %s]", formatOptionalDate(t.StartDate), formatOptionalDate(t.DueDate))
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return mutedColor.Sprint("—")
	}
	return dateColor.Sprint(dateutil.FormatDate(*d))
}

func formatAge(created time.Time) string {
	age := time.Since(created)
	switch {
	case age < time.Hour:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
}
