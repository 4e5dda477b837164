package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcastillo/andamio/internal/config"
	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/timeline"
	"github.com/tcastillo/andamio/internal/tui/commands"
	"github.com/tcastillo/andamio/internal/tui/theme"
)

// dragState is the mutable drag context shared with the mediator callbacks.
// The bubbletea model is a value; this lives behind a pointer so the live
// preview can mutate the dragged task between update cycles.
type dragState struct {
	handle  *timeline.SessionHandle
	task    *task.Task
	pending []tea.Cmd
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   task.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Data
	tasks []*task.Task

	// Derived timeline values, recomputed wholesale on load and after each
	// drag session closes (never mid-drag, so the scale holds still under
	// the pointer)
	window timeline.Window
	grid   timeline.Grid

	// Drag machinery
	mediator *timeline.Mediator
	drag     *dragState

	// Navigation and filtering
	cursor       int
	scrollOffset int
	filter       textinput.Model
	filtering    bool

	// Terminal geometry
	width  int
	height int
	layout Layout

	// Injectable clock for tests
	nowFunc func() time.Time

	loading bool

	// Messages
	statusMsg  string
	statusTime time.Time
	err        error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNowFunc overrides the clock used for window derivation.
func WithNowFunc(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter tasks"
	filter.CharLimit = 64
	filter.Width = 24

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	filter.PlaceholderStyle = styles.HelpStyle
	filter.TextStyle = styles.FilterStyle
	filter.PromptStyle = styles.FilterStyle

	ds := &dragState{}

	m := &Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		drag:    ds,
		filter:  filter,
		nowFunc: time.Now,
		loading: true,
	}

	m.mediator = &timeline.Mediator{
		Update: func(id string, patch task.DatePatch) {
			if ds.task != nil && ds.task.ID == id {
				start, err := dateutil.ParseDate(patch.StartDate)
				if err != nil {
					return
				}
				due, err := dateutil.ParseDate(patch.DueDate)
				if err != nil {
					return
				}
				ds.task.SetDates(start, due)
			}
			ds.pending = append(ds.pending, commands.SaveTaskDates(repo, id, patch))
		},
		OnScheduleAck: func(string) {
			ds.pending = append(ds.pending, commands.Status("Schedule updated"))
		},
		OnTaskClick: func(string) {
			if ds.task != nil {
				ds.pending = append(ds.pending, commands.Status(taskSummary(ds.task)))
			}
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.recomputeTimeline()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadTasks(m.repo)
}

// recomputeTimeline rebuilds the window and grid from the current task set.
func (m *Model) recomputeTimeline() {
	m.window = timeline.ComputeWindow(m.tasks, m.nowFunc())
	m.grid = timeline.BuildGrid(m.window)
}

// visibleTasks returns the tasks matching the current filter, in list order.
func (m Model) visibleTasks() []*task.Task {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.tasks
	}
	var out []*task.Task
	for _, t := range m.tasks {
		if strings.Contains(strings.ToLower(t.Title), query) {
			out = append(out, t)
		}
	}
	return out
}

// selectedTask returns the task under the cursor, if any.
func (m Model) selectedTask() *task.Task {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

// drainPending collects commands queued by the mediator callbacks.
func (m *Model) drainPending() tea.Cmd {
	if len(m.drag.pending) == 0 {
		return nil
	}
	cmds := m.drag.pending
	m.drag.pending = nil
	return tea.Batch(cmds...)
}

func taskSummary(t *task.Task) string {
	var b strings.Builder
	b.WriteString(t.Title)
	if t.StartDate != nil || t.DueDate != nil {
		b.WriteString(" [")
		if t.StartDate != nil {
			b.WriteString(dateutil.FormatDate(*t.StartDate))
		}
		b.WriteString(" → ")
		if t.DueDate != nil {
			b.WriteString(dateutil.FormatDate(*t.DueDate))
		}
		b.WriteString("]")
	}
	return fmt.Sprintf("%s (%s)", b.String(), t.Status)
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo task.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
