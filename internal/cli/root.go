package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/export"
	"github.com/sspots/fitfinder/internal/geo"
	"github.com/sspots/fitfinder/internal/repository"
)

// App holds references to the ports used by CLI commands and views.
type App struct {
	Client   api.Client
	Maps     geo.MapProvider
	Profiles repository.ProfileRepo
	Routines repository.RoutineRepo
	Exporter export.Exporter

	// IsInteractive reports whether stdin is attached to a terminal.
	// The root command only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fitfinder" command. Run without
// arguments on a terminal it starts the TUI; headless subcommands cover
// scripted use.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitfinder",
		Short: "Find nearby public sports programs that fit your survey",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newSearchCmd(app),
		newHistoryCmd(app),
		newResetCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
