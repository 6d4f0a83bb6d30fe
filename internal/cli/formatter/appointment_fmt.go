package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// FormatAppointments formats the stored appointment list as a table.
func FormatAppointments(appts []domain.Appointment) string {
	if len(appts) == 0 {
		return Dim("No appointments yet. Add one with 'harmonia appointment add'.") + "\n"
	}

	headers := []string{"ID", "WHEN", "DURATION", "TYPE", "STATUS", "CLIENT"}
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			TruncID(a.ID),
			a.Start.Format("Mon 2006-01-02 15:04"),
			FormatMinutes(a.DurationMin()),
			string(a.Type),
			statusPill(a.Status),
			clientOrDash(a.ClientName),
		})
	}
	return RenderTable(headers, rows)
}

func statusPill(s domain.AppointmentStatus) string {
	switch s {
	case domain.StatusConfirmed:
		return StyleGreen.Render("● confirmed")
	case domain.StatusPending:
		return StyleYellow.Render("◌ pending")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ cancelled")
	case domain.StatusCompleted:
		return StyleBlue.Render("✔ completed")
	case domain.StatusNoShow:
		return StyleRed.Render("⊘ no-show")
	default:
		return StyleDim.Render(string(s))
	}
}

func clientOrDash(name string) string {
	if strings.TrimSpace(name) == "" {
		return Dim("--")
	}
	return name
}

// FormatSettings formats the profile settings as a table.
func FormatSettings(s domain.Settings) string {
	rows := [][]string{
		{"Workday", fmt.Sprintf("%02d:00–%02d:00", s.WorkDayStartHour, s.WorkDayEndHour)},
		{"Break duration", FormatMinutes(s.BreakDurationMin)},
		{"Max daily appointments", fmt.Sprintf("%d", s.MaxDailyAppointments)},
		{"Max weekly hours", fmt.Sprintf("%dh", s.MaxWeeklyHours)},
	}
	return RenderTable([]string{"SETTING", "VALUE"}, rows)
}
