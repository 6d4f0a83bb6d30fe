package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
)

func newPredictCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast overload risk for the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			horizon := days
			if !cmd.Flags().Changed("days") && app.HorizonDays > 0 {
				horizon = app.HorizonDays
			}

			forecast, err := app.Analytics.PredictOverload(context.Background(), horizon)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatForecast(forecast))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Forecast horizon in days")

	return cmd
}

func newCriticalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "List upcoming critical days",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.Analytics.CriticalDays(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCriticalDays(days))
			return nil
		},
	}
}

func newBlocksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "Suggest protective time blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.Analytics.SuggestBlocks(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBlockSuggestions(set))
			return nil
		},
	}
}

func newRecoveryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recovery",
		Short: "Show the recovery recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Analytics.RecoveryRecommendation(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecovery(rec))
			return nil
		},
	}
}
