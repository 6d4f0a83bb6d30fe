package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/contract"
)

// FormatForecast formats an overload forecast as a day-by-day risk table.
func FormatForecast(f *contract.OverloadForecast) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleBold.Render(fmt.Sprintf("Next %d days", f.HorizonDays)),
		RiskIndicator(f.OverallRisk)))

	headers := []string{"DATE", "SCORE", "RISK", "FACTORS", "RECOMMENDATION"}
	rows := make([][]string, 0, len(f.Predictions))
	for _, p := range f.Predictions {
		rows = append(rows, []string{
			Bold(p.Date),
			RenderScoreBar(p.DailyScore, 10),
			RiskIndicator(p.RiskLevel),
			Dim(joinFactors(p.RiskFactors)),
			p.Recommendation,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(f.ActionableInsights) > 0 {
		b.WriteString("\n")
		b.WriteString(BulletList(f.ActionableInsights) + "\n")
	}

	return RenderBox("Overload Forecast", b.String())
}

func joinFactors(factors []contract.RiskFactor) string {
	if len(factors) == 0 {
		return "--"
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
