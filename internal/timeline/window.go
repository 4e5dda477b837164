// Package timeline implements the scheduling engine behind the Gantt board:
// window derivation, grid bucketing, bar positioning, and the pointer-drag
// state machine that reschedules tasks.
package timeline

import (
	"time"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
)

// Padding policy around the observed date range. Fixed, not configurable.
const (
	padBeforeDays = 7
	padAfterDays  = 14
	fallbackDays  = 30
)

// Window is the padded, inclusive date interval that bounds all dated tasks.
// It is a derived value: recomputed wholesale whenever the task set changes,
// never mutated in place.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow derives the timeline window from the task set. Tasks without
// dates contribute nothing; if no task carries any date the window defaults
// to [today, today+30] with no padding. Otherwise the window spans
// [earliest−7d, latest+14d].
func ComputeWindow(tasks []*task.Task, today time.Time) Window {
	today = dateutil.TruncateToDay(today)

	var min, max time.Time
	seen := false
	observe := func(d *time.Time) {
		if d == nil {
			return
		}
		t := dateutil.TruncateToDay(*d)
		if !seen {
			min, max = t, t
			seen = true
			return
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	for _, tk := range tasks {
		observe(tk.StartDate)
		observe(tk.DueDate)
	}

	if !seen {
		return Window{Start: today, End: today.AddDate(0, 0, fallbackDays)}
	}
	return Window{
		Start: min.AddDate(0, 0, -padBeforeDays),
		End:   max.AddDate(0, 0, padAfterDays),
	}
}
