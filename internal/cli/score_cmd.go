package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
	"github.com/harmonialabs/harmonia/internal/contract"
)

// parseDateFlag accepts natural language ("yesterday", "next monday") as
// well as plain YYYY-MM-DD dates.
func parseDateFlag(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(s, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date %q", s)
	}
	// naturaldate swallows input it cannot match and hands back the base
	// time unchanged, so treat that as a parse failure too.
	if t.Equal(now) {
		return time.Time{}, fmt.Errorf("cannot parse date %q", s)
	}
	return t, nil
}

// weekBounds returns the Monday 00:00 and Sunday 23:59:59 around t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Second)
	return start, end
}

func newScoreCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show the weekly Harmony Score",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			req := contract.WeeklyScoreRequest{Now: &now}

			if week != "" {
				anchor, err := parseDateFlag(week, now)
				if err != nil {
					return err
				}
				start, end := weekBounds(anchor)
				req.WeekStart = &start
				req.WeekEnd = &end
			}

			res, err := app.Analytics.WeeklyScore(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatWeeklyScore(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Score the week containing this date (natural language or YYYY-MM-DD)")

	return cmd
}
