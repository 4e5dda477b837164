package summary

import (
	"testing"
	"time"

	"github.com/tcastillo/andamio/internal/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datep(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestSummarize(t *testing.T) {
	today := date(2024, 6, 1)
	tasks := []*task.Task{
		{ID: "t1", Title: "Pour foundation", Status: task.StatusInProgress,
			StartDate: datep(2024, 3, 1), DueDate: datep(2024, 3, 10)},
		{ID: "t2", Title: "Order rebar", Status: task.StatusNotStarted},
	}

	s := Summarize(tasks, today)

	if s.Total != 2 {
		t.Errorf("got total %d, want 2", s.Total)
	}
	if s.Unscheduled != 1 {
		t.Errorf("got %d unscheduled, want 1", s.Unscheduled)
	}
	if got := len(s.Weeks); got != 6 {
		t.Fatalf("got %d weeks, want 6", got)
	}
	if s.Weeks[0].Label != "18/2" {
		t.Errorf("got first week label %q, want 18/2", s.Weeks[0].Label)
	}

	// The dated task spans Mar 1-10 and touches the weeks of Feb 25,
	// Mar 3 and Mar 10.
	wantActive := []int{0, 1, 1, 1, 0, 0}
	for i, want := range wantActive {
		if s.Weeks[i].Active != want {
			t.Errorf("week %s: got active %d, want %d", s.Weeks[i].Label, s.Weeks[i].Active, want)
		}
	}

	// Its due date lands in the week of Mar 10.
	for i, wk := range s.Weeks {
		want := 0
		if i == 3 {
			want = 1
		}
		if wk.Due != want {
			t.Errorf("week %s: got due %d, want %d", wk.Label, wk.Due, want)
		}
	}
}

func TestSummarizeCountsDone(t *testing.T) {
	today := date(2024, 6, 1)
	tasks := []*task.Task{
		{ID: "t1", Title: "Demolition", Status: task.StatusDone,
			StartDate: datep(2024, 3, 4), DueDate: datep(2024, 3, 6)},
	}

	s := Summarize(tasks, today)

	var done int
	for _, wk := range s.Weeks {
		done += wk.Done
	}
	if done != 1 {
		t.Errorf("got %d done week hits, want 1", done)
	}
}

func TestSummarizeEmptyBoard(t *testing.T) {
	today := date(2024, 6, 1)

	s := Summarize(nil, today)

	if !s.Window.Start.Equal(today) {
		t.Errorf("got window start %v, want today", s.Window.Start)
	}
	if !s.Window.End.Equal(today.AddDate(0, 0, 30)) {
		t.Errorf("got window end %v, want today+30", s.Window.End)
	}
	if s.Total != 0 || s.Unscheduled != 0 {
		t.Errorf("got total %d unscheduled %d, want zeros", s.Total, s.Unscheduled)
	}
}
