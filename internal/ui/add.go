package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start  string
		due    string
		status string
		site   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new work item.

Dates are optional: a task may carry a start date, a due date, both, or
neither. Undated tasks still render on the timeline, spanning the
current window.

Example:
  andamio add "Pour foundation" --start=2025-03-01 --due=2025-03-10 --site=north`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			siteID, err := a.resolveSite(site)
			if err != nil {
				return err
			}

			t, err := task.New(args[0], status, start, due, siteID)
			if err != nil {
				return err
			}

			if err := a.repo.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task %s: %s %s\n", shortID(t.ID), t.Title, formatDates(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started, in_progress, waiting, blocked, done)")
	cmd.Flags().StringVar(&site, "site", "", "Site name to assign the task to")

	return cmd
}

// resolveSite maps a site name to its id. An empty name means no site.
func (a *App) resolveSite(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	sites, err := a.repo.ListSites(context.Background())
	if err != nil {
		return "", fmt.Errorf("listing sites: %w", err)
	}
	for _, s := range sites {
		if s.Name == name {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q (add it with: andamio sites add)", task.ErrSiteNotFound, name)
}
