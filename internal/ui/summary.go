package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/summary"
	"github.com/tcastillo/andamio/internal/task"
)

func (a *App) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-week workload across the board window",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := summary.Build(context.Background(), a.repo, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("%s %s .. %s\n\n",
				titleColor.Sprint("window:"),
				dateutil.FormatDate(s.Window.Start),
				dateutil.FormatDate(s.Window.End))

			maxActive := 1
			for _, wk := range s.Weeks {
				if wk.Active > maxActive {
					maxActive = wk.Active
				}
			}

			for _, wk := range s.Weeks {
				bar := strings.Repeat("█", wk.Active*20/maxActive)
				line := fmt.Sprintf("  week of %-6s %-20s %2d active", wk.Label, bar, wk.Active)
				if wk.Due > 0 {
					line += dateColor.Sprintf("  %d due", wk.Due)
				}
				if wk.Done > 0 {
					line += statusColor[task.StatusDone].Sprintf("  %d done", wk.Done)
				}
				fmt.Println(line)
			}

			fmt.Printf("\n%s\n", mutedColor.Sprintf("%d task(s), %d unscheduled", s.Total, s.Unscheduled))
			return nil
		},
	}
}
