package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tcastillo/andamio/internal/db"
	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/summary"
	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/timeline"
)

// openRepo creates a fresh file-backed repository with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func createTask(t *testing.T, repo *db.SQLite, title, start, due string) *task.Task {
	t.Helper()
	tsk, err := task.New(title, "in_progress", start, due, "")
	if err != nil {
		t.Fatalf("failed to build task: %v", err)
	}
	if err := repo.CreateTask(context.Background(), tsk); err != nil {
		t.Fatalf("failed to insert task: %v", err)
	}
	return tsk
}

// TestDragPersistsThroughDatabase walks the whole pipeline: tasks in the
// database, a window and grid computed over them, a drag session moving a
// bar, every accepted candidate written through the repository, and the
// committed dates surviving a reload.
func TestDragPersistsThroughDatabase(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	moved := createTask(t, repo, "Pour foundation", "2024-03-01", "2024-03-10")
	createTask(t, repo, "Frame walls", "2024-03-11", "2024-03-20")

	tasks, err := repo.ListTasks(ctx, "")
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}

	today := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	window := timeline.ComputeWindow(tasks, today)
	grid := timeline.BuildGrid(window)

	var acked []string
	m := &timeline.Mediator{
		Update: func(id string, patch task.DatePatch) {
			if err := repo.UpdateTaskDates(ctx, id, patch); err != nil {
				t.Fatalf("failed to persist patch: %v", err)
			}
		},
		OnScheduleAck: func(id string) { acked = append(acked, id) },
	}

	// A 300-cell track over the window, anchor in the bar's interior.
	const trackWidth = 300.0
	pixelsPerDay := trackWidth / float64(grid.TotalDays)
	anchorX := 100.0

	h := m.Begin(timeline.NewSession(moved, timeline.ModeMove, anchorX, window))
	if h == nil {
		t.Fatal("session should open")
	}

	// Drag right in two steps: +2 days, then +5 days total.
	h.PointerMove(anchorX+2*pixelsPerDay, pixelsPerDay)
	h.PointerMove(anchorX+5*pixelsPerDay, pixelsPerDay)
	h.Close()

	if len(acked) != 1 || acked[0] != moved.ID {
		t.Errorf("got acks %v, want one for %s", acked, moved.ID)
	}

	got, err := repo.GetTask(ctx, moved.ID)
	if err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if dateutil.FormatDate(*got.StartDate) != "2024-03-06" {
		t.Errorf("got start %s, want 2024-03-06", dateutil.FormatDate(*got.StartDate))
	}
	if dateutil.FormatDate(*got.DueDate) != "2024-03-15" {
		t.Errorf("got due %s, want 2024-03-15", dateutil.FormatDate(*got.DueDate))
	}

	// The untouched task keeps its dates.
	tasks, err = repo.ListTasks(ctx, "")
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	for _, tk := range tasks {
		if tk.ID != moved.ID && dateutil.FormatDate(*tk.StartDate) != "2024-03-11" {
			t.Errorf("untouched task moved: start %s", dateutil.FormatDate(*tk.StartDate))
		}
	}
}

// TestRejectedResizeNeverReachesDatabase drags a start edge past the due
// date; nothing may be written.
func TestRejectedResizeNeverReachesDatabase(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	tsk := createTask(t, repo, "Roofing", "2024-03-01", "2024-03-10")

	tasks, _ := repo.ListTasks(ctx, "")
	window := timeline.ComputeWindow(tasks, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	writes := 0
	m := &timeline.Mediator{
		Update: func(id string, patch task.DatePatch) {
			writes++
			_ = repo.UpdateTaskDates(ctx, id, patch)
		},
	}

	const pixelsPerDay = 10.0
	h := m.Begin(timeline.NewSession(tsk, timeline.ModeResizeStart, 50, window))
	h.PointerMove(50+20*pixelsPerDay, pixelsPerDay)
	h.Close()

	if writes != 0 {
		t.Errorf("got %d writes, want none", writes)
	}
	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if dateutil.FormatDate(*got.StartDate) != "2024-03-01" {
		t.Errorf("rejected resize reached the database: start %s", dateutil.FormatDate(*got.StartDate))
	}
}

// TestOneDatedTaskDragWritesBothDates drags a task that only has a due date;
// the first accepted move must persist a full range.
func TestOneDatedTaskDragWritesBothDates(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	tsk := createTask(t, repo, "Inspection", "", "2024-03-10")

	tasks, _ := repo.ListTasks(ctx, "")
	window := timeline.ComputeWindow(tasks, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	m := &timeline.Mediator{
		Update: func(id string, patch task.DatePatch) {
			if err := repo.UpdateTaskDates(ctx, id, patch); err != nil {
				t.Fatalf("failed to persist patch: %v", err)
			}
		},
	}

	const pixelsPerDay = 10.0
	h := m.Begin(timeline.NewSession(tsk, timeline.ModeMove, 50, window))
	h.PointerMove(50+3*pixelsPerDay, pixelsPerDay)
	h.Close()

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if got.StartDate == nil || got.DueDate == nil {
		t.Fatal("both dates should be set after the drag")
	}
	// The bar collapsed to the due date; +3 days from there.
	if dateutil.FormatDate(*got.StartDate) != "2024-03-13" {
		t.Errorf("got start %s, want 2024-03-13", dateutil.FormatDate(*got.StartDate))
	}
	if dateutil.FormatDate(*got.DueDate) != "2024-03-13" {
		t.Errorf("got due %s, want 2024-03-13", dateutil.FormatDate(*got.DueDate))
	}
}

func TestSummaryOverDatabase(t *testing.T) {
	repo := openRepo(t)

	createTask(t, repo, "Pour foundation", "2024-03-01", "2024-03-10")
	createTask(t, repo, "Order rebar", "", "")

	s, err := summary.Build(context.Background(), repo, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("failed to build summary: %v", err)
	}
	if s.Total != 2 || s.Unscheduled != 1 {
		t.Errorf("got total %d unscheduled %d, want 2 and 1", s.Total, s.Unscheduled)
	}
}

func TestNotFoundFlowsThroughRepo(t *testing.T) {
	repo := openRepo(t)

	err := repo.UpdateTaskDates(context.Background(), "nope", task.DatePatch{StartDate: "2024-03-01"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}
}
