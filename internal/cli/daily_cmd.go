package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
)

func newDailyCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show one day's score",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if dateStr != "" {
				parsed, err := parseDateFlag(dateStr, date)
				if err != nil {
					return err
				}
				date = parsed
			}

			res, err := app.Analytics.DailyScore(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDailyScore(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to score (natural language or YYYY-MM-DD, default today)")

	return cmd
}
