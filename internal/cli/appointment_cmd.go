package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/service"
)

func newAppointmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"appt"},
		Short:   "Manage appointments",
	}

	cmd.AddCommand(
		newAppointmentAddCmd(app),
		newAppointmentListCmd(app),
		newAppointmentCancelCmd(app),
	)

	return cmd
}

func newAppointmentAddCmd(app *App) *cobra.Command {
	var start, typeStr, client, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on an interactive terminal: open the form wizard.
			if start == "" && app.interactive() {
				return runAppointmentWizard(app)
			}

			startAt, err := time.ParseInLocation("2006-01-02 15:04", start, time.Local)
			if err != nil {
				return fmt.Errorf("invalid start %q (expected YYYY-MM-DD HH:MM)", start)
			}

			created, err := app.Appointments.Add(context.Background(), service.AddAppointmentRequest{
				Start:      startAt,
				End:        startAt.Add(time.Duration(duration) * time.Minute),
				Type:       domain.AppointmentType(typeStr),
				ClientName: client,
				Notes:      notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %s at %s (%s)\n",
				created.Type, formatter.TruncID(created.ID),
				created.Start.Format("2006-01-02 15:04"),
				formatter.FormatMinutes(created.DurationMin()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes")
	cmd.Flags().StringVar(&typeStr, "type", "appointment", "Type: appointment, break, blocked, availability, recovery")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func runAppointmentWizard(app *App) error {
	var start, duration, typeStr, client string
	typeStr = string(domain.TypeAppointment)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Placeholder("2025-06-02 09:00").
				Value(&start).
				Validate(validateDateTime),
			huh.NewInput().
				Title("Duration in minutes").
				Placeholder("60").
				Value(&duration).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Appointment", "appointment"),
					huh.NewOption("Break", "break"),
					huh.NewOption("Blocked", "blocked"),
					huh.NewOption("Recovery", "recovery"),
				).
				Value(&typeStr),
			huh.NewInput().
				Title("Client (optional)").
				Value(&client),
		),
	).WithTheme(harmoniaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04", start, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start %q", start)
	}
	durationMin := intOrDefault(duration, 60)

	created, err := app.Appointments.Add(context.Background(), service.AddAppointmentRequest{
		Start:      startAt,
		End:        startAt.Add(time.Duration(durationMin) * time.Minute),
		Type:       domain.AppointmentType(typeStr),
		ClientName: client,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s\n", created.Type, formatter.TruncID(created.ID))
	return nil
}

func newAppointmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := app.Appointments.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAppointments(appts))
			return nil
		},
	}
}

func newAppointmentCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveAppointmentID(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Appointments.Cancel(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Cancelled appointment %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

// resolveAppointmentID resolves a full UUID or unique prefix to a stored ID.
func resolveAppointmentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("appointment ID is required")
	}

	appts, err := app.Appointments.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, a := range appts {
		if a.ID == input {
			return a.ID, nil
		}
		if len(input) >= 4 && len(a.ID) >= len(input) && a.ID[:len(input)] == input {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("appointment not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("appointment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
