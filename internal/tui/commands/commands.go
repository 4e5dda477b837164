// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcastillo/andamio/internal/task"
)

// TasksLoadedMsg is sent when the task list is loaded.
type TasksLoadedMsg struct {
	Tasks []*task.Task
}

// TaskSavedMsg is sent when a task mutation has been persisted.
type TaskSavedMsg struct {
	ID string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadTasks loads all tasks from the repository.
func LoadTasks(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.ListTasks(context.Background(), "")
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

// SaveTaskDates persists a date patch. Called once per accepted drag move;
// the in-memory preview has already been applied, so failures surface as an
// error message rather than a rollback.
func SaveTaskDates(repo task.Repository, id string, patch task.DatePatch) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateTaskDates(context.Background(), id, patch); err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{ID: id}
	}
}

// SaveTaskStatus persists a status change.
func SaveTaskStatus(repo task.Repository, id string, status task.Status) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateTaskStatus(context.Background(), id, status); err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{ID: id}
	}
}

// Status produces a transient status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
