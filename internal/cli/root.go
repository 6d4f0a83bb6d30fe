package cli

import (
	"github.com/harmonialabs/harmonia/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Appointments service.AppointmentService
	Settings     service.SettingsService
	Analytics    service.AnalyticsService
	Import       service.ImportService

	// HorizonDays is the configured default forecast window.
	HorizonDays int

	// IsInteractive reports whether stdin is an interactive terminal;
	// forms and the dashboard are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "harmonia" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "harmonia",
		Short: "Calendar well-being scoring and overload prediction",
	}

	root.AddCommand(
		newScoreCmd(app),
		newDailyCmd(app),
		newPredictCmd(app),
		newCriticalCmd(app),
		newBlocksCmd(app),
		newRecoveryCmd(app),
		newAppointmentCmd(app),
		newSettingsCmd(app),
		newImportCmd(app),
		newDashboardCmd(app),
	)

	return root
}
