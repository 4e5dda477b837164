package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcastillo/andamio/internal/config"
	"github.com/tcastillo/andamio/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("%s %s\n", titleColor.Sprint("config file:"), config.DefaultConfigPath())
			fmt.Printf("%s %s\n", titleColor.Sprint("db path:    "), a.config.Storage.DBPath)
			fmt.Printf("%s %s\n", titleColor.Sprint("theme:      "), a.config.UI.Theme)
			fmt.Printf("%s %d\n", titleColor.Sprint("label width:"), a.config.UI.LabelWidth)
			return nil
		},
	}

	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()

			cfg := a.config
			if name := promptTheme(); name != "" {
				cfg.UI.Theme = name
			}

			if err := cfg.SaveTo(path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
}

// promptTheme asks for a theme name on stdin. Empty input keeps the current
// theme; unknown names are rejected.
func promptTheme() string {
	fmt.Printf("Theme [%s] (enter to keep current): ", strings.Join(theme.Available(), ", "))

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return ""
	}
	if !theme.IsAvailable(name) {
		fmt.Println(errorColor.Sprintf("unknown theme %q, keeping current", name))
		return ""
	}
	return name
}
