package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/task"
)

func (a *App) sitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage construction sites",
		RunE: func(_ *cobra.Command, _ []string) error {
			sites, err := a.repo.ListSites(context.Background())
			if err != nil {
				return fmt.Errorf("listing sites: %w", err)
			}
			if len(sites) == 0 {
				fmt.Println(mutedColor.Sprint("No sites. Add one with: andamio sites add"))
				return nil
			}
			for _, s := range sites {
				fmt.Printf("%s  %s\n", mutedColor.Sprint(shortID(s.ID)), titleColor.Sprint(s.Name))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := task.NewSite(args[0])
			if err != nil {
				return err
			}
			if err := a.repo.CreateSite(context.Background(), s); err != nil {
				return fmt.Errorf("creating site: %w", err)
			}
			fmt.Printf("Created site %s: %s\n", shortID(s.ID), s.Name)
			return nil
		},
	})

	return cmd
}
