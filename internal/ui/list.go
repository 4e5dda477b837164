package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(_ *cobra.Command, _ []string) error {
			var filter task.Status
			if status != "" {
				parsed, err := task.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = parsed
			}

			tasks, err := a.repo.ListTasks(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			if len(tasks) == 0 {
				fmt.Println(mutedColor.Sprint("No tasks. Add one with: andamio add"))
				return nil
			}

			width := termWidth()
			titleWidth := width - 50
			if titleWidth < 16 {
				titleWidth = 16
			}

			for _, t := range tasks {
				title := ansi.Truncate(t.Title, titleWidth, "…")
				fmt.Printf("%s  %-*s %-16s %s %s\n",
					mutedColor.Sprint(shortID(t.ID)),
					titleWidth, title,
					statusText(t.Status),
					formatDates(t),
					mutedColor.Sprint(formatAge(t.CreatedAt)))
			}
			fmt.Printf("\n%s\n", mutedColor.Sprintf("%d task(s)", len(tasks)))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	return cmd
}
