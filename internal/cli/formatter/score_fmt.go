package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/contract"
)

const scoreBarWidth = 20

var dimensionLabels = map[contract.Dimension]string{
	contract.DimDailyLoad:        "Daily Load",
	contract.DimBreakCompliance:  "Break Compliance",
	contract.DimEveningWork:      "Evening Work",
	contract.DimWeeklyBalance:    "Weekly Balance",
	contract.DimRecoveryAdequacy: "Recovery Adequacy",
	contract.DimPredictiveStress: "Predictive Stress",
}

// FormatWeeklyScore formats the composite score with its breakdown, trends,
// insights, and recommendations into a styled dashboard string.
func FormatWeeklyScore(res *contract.WeeklyScoreResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleBold.Render(fmt.Sprintf("Harmony Score: %d", res.Score)),
		LevelIndicator(res.Level)))
	if res.Fallback {
		b.WriteString(StyleYellow.Render("  (fallback result)") + "\n")
	}
	b.WriteString("\n")

	for _, dim := range contract.AllDimensions {
		sub, ok := res.Breakdown[dim]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%-18s %s\n", dimensionLabels[dim], RenderScoreBar(sub, scoreBarWidth)))
	}

	if len(res.Trends.DayScores) > 0 {
		b.WriteString("\n")
		b.WriteString(formatTrend(res.Trends))
	}

	if len(res.Insights) > 0 {
		b.WriteString("\n" + Header("Insights") + "\n")
		b.WriteString(BulletList(res.Insights) + "\n")
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		b.WriteString(BulletList(res.Recommendations) + "\n")
	}

	if len(res.CriticalDays) > 0 {
		b.WriteString("\n" + Header("Critical days") + "\n")
		for _, cd := range res.CriticalDays {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n",
				Bold(cd.Date), SeverityBadge(cd.Severity), Dim(strings.Join(cd.Factors, ", "))))
		}
	}

	return RenderBox("Weekly Harmony", b.String())
}

func formatTrend(t contract.TrendSummary) string {
	var arrow string
	switch t.Direction {
	case contract.TrendImproving:
		arrow = StyleGreen.Render("▲ improving")
	case contract.TrendDeclining:
		arrow = StyleRed.Render("▼ declining")
	default:
		arrow = StyleDim.Render("◆ stable")
	}

	line := fmt.Sprintf("Trend: %s", arrow)
	if t.BestDay != "" {
		line += Dim(fmt.Sprintf("  best %s, worst %s", t.BestDay, t.WorstDay))
	}
	return line + "\n"
}

// FormatDailyScore formats one day's score summary.
func FormatDailyScore(res *contract.DailyScoreResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleBold.Render(fmt.Sprintf("%s — score %d", res.Date, res.Score)),
		LevelIndicator(res.Level)))

	rows := [][]string{
		{"Appointments", fmt.Sprintf("%d", res.AppointmentCount)},
		{"Worked hours", FormatHours(res.TotalWorkHours)},
		{"Break compliance", fmt.Sprintf("%d", res.BreakCompliance)},
		{"Intensity", string(res.Intensity)},
	}
	if res.HasNightWork {
		rows = append(rows, []string{"Night work", StyleRed.Render("yes")})
	} else if res.HasEveningWork {
		rows = append(rows, []string{"Evening work", StyleYellow.Render("yes")})
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows))

	return RenderBox("Daily Harmony", b.String())
}
