package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/config"
	"github.com/jvaldivia/almanac/internal/event"
	"github.com/jvaldivia/almanac/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   event.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "almanac",
		Short: "A terminal calendar",
		Long: `Almanac is a month-view calendar for the terminal.

Running it with no arguments opens the interactive calendar. The
subcommands manage events directly from the shell.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.conflictsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("almanac %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
