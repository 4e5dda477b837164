// Package ui provides the command line interface for andamio.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/config"
	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   task.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "andamio",
		Short: "A schedule board for construction-site work items",
		Long: `Andamio is a terminal dashboard for construction-site work items.

The main view is an interactive timeline: each task renders as a bar
spanning its start and due dates, and bars can be dragged with the mouse
to move or resize the schedule directly.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a file in the working directory)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.statusCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.sitesCmd())
	a.root.AddCommand(a.summaryCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("andamio %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the application's resources.
func (a *App) Close() error {
	if a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
