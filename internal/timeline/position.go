package timeline

import (
	"time"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
)

// minWidthPercent keeps every bar visible and grabbable no matter how
// compressed the scale gets.
const minWidthPercent = 2.0

// BarPosition locates a task bar on the track as window-relative percentages.
type BarPosition struct {
	LeftPercent  float64
	WidthPercent float64
}

// EffectiveRange resolves a task's possibly-missing dates against the window:
// a missing date is substituted by the present one, and a fully undated task
// spans the whole window. The drag controller seeds sessions through the same
// policy so a bar drags exactly the span it renders.
func EffectiveRange(w Window, t *task.Task) (start, end time.Time) {
	switch {
	case t.StartDate != nil:
		start = dateutil.TruncateToDay(*t.StartDate)
	case t.DueDate != nil:
		start = dateutil.TruncateToDay(*t.DueDate)
	default:
		start = w.Start
	}
	switch {
	case t.DueDate != nil:
		end = dateutil.TruncateToDay(*t.DueDate)
	case t.StartDate != nil:
		end = dateutil.TruncateToDay(*t.StartDate)
	default:
		end = w.End
	}
	return start, end
}

// Position maps one task onto the track. Pure; safe to recompute per render.
func Position(w Window, totalDays int, t *task.Task) BarPosition {
	effStart, effEnd := EffectiveRange(w, t)

	offsetDays := dateutil.DaysBetween(w.Start, effStart)
	durationDays := dateutil.DaysBetween(effStart, effEnd)
	if durationDays < 1 {
		durationDays = 1
	}

	left := float64(offsetDays) / float64(totalDays) * 100
	width := float64(durationDays) / float64(totalDays) * 100
	if width < minWidthPercent {
		width = minWidthPercent
	}
	return BarPosition{LeftPercent: left, WidthPercent: width}
}
