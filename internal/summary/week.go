// Package summary aggregates the schedule board into per-week workload counts.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/timeline"
)

// WeekLoad counts the work landing in one week of the board window.
type WeekLoad struct {
	Start  time.Time // Sunday the week begins on
	Label  string    // d/m, matching the board's week header
	Active int       // tasks whose effective range overlaps the week
	Due    int       // tasks whose due date falls inside the week
	Done   int       // active tasks already marked done
}

// BoardSummary is the workload view of the whole window.
type BoardSummary struct {
	Window      timeline.Window
	Weeks       []WeekLoad
	Total       int
	Unscheduled int // tasks with neither date
}

// Summarize buckets tasks into the weeks of their computed window. Tasks
// without dates count toward Unscheduled and no week.
func Summarize(tasks []*task.Task, today time.Time) *BoardSummary {
	window := timeline.ComputeWindow(tasks, today)
	grid := timeline.BuildGrid(window)

	s := &BoardSummary{Window: window, Total: len(tasks)}
	s.Weeks = make([]WeekLoad, len(grid.Weeks))
	for i, wk := range grid.Weeks {
		s.Weeks[i] = WeekLoad{Start: wk.Date, Label: wk.Label}
	}

	for _, t := range tasks {
		if !t.HasDates() {
			s.Unscheduled++
			continue
		}
		start, end := timeline.EffectiveRange(window, t)
		for i := range s.Weeks {
			weekStart := s.Weeks[i].Start
			weekEnd := weekStart.AddDate(0, 0, 7)

			if start.Before(weekEnd) && !end.Before(weekStart) {
				s.Weeks[i].Active++
				if t.IsDone() {
					s.Weeks[i].Done++
				}
			}
			if t.DueDate != nil && !t.DueDate.Before(weekStart) && t.DueDate.Before(weekEnd) {
				s.Weeks[i].Due++
			}
		}
	}
	return s
}

// Build loads every task and summarizes it against today.
func Build(ctx context.Context, repo task.Repository, today time.Time) (*BoardSummary, error) {
	tasks, err := repo.ListTasks(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	return Summarize(tasks, dateutil.TruncateToDay(today)), nil
}
