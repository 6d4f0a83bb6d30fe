package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/harmonialabs/harmonia/internal/cli"
	"github.com/harmonialabs/harmonia/internal/config"
	"github.com/harmonialabs/harmonia/internal/db"
	"github.com/harmonialabs/harmonia/internal/engine"
	"github.com/harmonialabs/harmonia/internal/repository"
	"github.com/harmonialabs/harmonia/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	apptRepo := repository.NewSQLiteAppointmentRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	app := &cli.App{
		Appointments: service.NewAppointmentService(apptRepo),
		Settings:     service.NewSettingsService(settingsRepo),
		Analytics:    service.NewAnalyticsService(apptRepo, settingsRepo, engine.DefaultThresholds()),
		Import:       service.NewImportService(apptRepo, settingsRepo),
		HorizonDays:  cfg.Forecast.HorizonDays,
	}

	switch cfg.Dashboard.Color {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
