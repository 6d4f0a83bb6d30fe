package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or update the wellness profile",
	}

	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var workStart, workEnd, breakMin, maxDaily, maxWeekly int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("work-start") {
				s.WorkDayStartHour = workStart
			}
			if cmd.Flags().Changed("work-end") {
				s.WorkDayEndHour = workEnd
			}
			if cmd.Flags().Changed("break") {
				s.BreakDurationMin = breakMin
			}
			if cmd.Flags().Changed("max-daily") {
				s.MaxDailyAppointments = maxDaily
			}
			if cmd.Flags().Changed("max-weekly") {
				s.MaxWeeklyHours = maxWeekly
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}

			updated, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSettings(updated))
			return nil
		},
	}

	cmd.Flags().IntVar(&workStart, "work-start", 0, "Workday start hour (0-23)")
	cmd.Flags().IntVar(&workEnd, "work-end", 0, "Workday end hour (1-24)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Expected break length in minutes")
	cmd.Flags().IntVar(&maxDaily, "max-daily", 0, "Maximum comfortable appointments per day")
	cmd.Flags().IntVar(&maxWeekly, "max-weekly", 0, "Maximum comfortable weekly hours")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a schedule export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportSchedule(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d appointments", res.AppointmentCount)
			if res.SettingsUpdated {
				fmt.Print(" and updated the profile settings")
			}
			fmt.Println()
			return nil
		},
	}
}
