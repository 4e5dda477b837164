package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/task"
)

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [task-id] [status]",
		Short: "Change a task's status",
		Long: fmt.Sprintf(`Change a task's status.

The id may be abbreviated to any unique prefix. Valid statuses:
  %s`, strings.Join(statusNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			status, err := task.ParseStatus(args[1])
			if err != nil {
				return err
			}

			t, err := a.findTask(args[0])
			if err != nil {
				return err
			}

			if err := a.repo.UpdateTaskStatus(context.Background(), t.ID, status); err != nil {
				return fmt.Errorf("updating status: %w", err)
			}

			fmt.Printf("%s %s is now %s\n", shortID(t.ID), t.Title, statusText(status))
			return nil
		},
	}
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.findTask(args[0])
			if err != nil {
				return err
			}

			if err := a.repo.DeleteTask(context.Background(), t.ID); err != nil {
				return fmt.Errorf("deleting task: %w", err)
			}

			fmt.Printf("Deleted %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}

// findTask resolves an id or unique id prefix to a task.
func (a *App) findTask(idOrPrefix string) (*task.Task, error) {
	t, err := a.repo.GetTask(context.Background(), idOrPrefix)
	if err == nil {
		return t, nil
	}

	tasks, err := a.repo.ListTasks(context.Background(), "")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var match *task.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous id prefix %q", idOrPrefix)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", task.ErrTaskNotFound, idOrPrefix)
	}
	return match, nil
}

func statusNames() []string {
	statuses := task.Statuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}
