package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
)

// FormatRecovery formats a recovery recommendation.
func FormatRecovery(rec *contract.RecoveryRecommendation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleBold.Render(fmt.Sprintf("Recommended: %s of %s recovery",
			FormatHours(rec.RecommendedHours), rec.RecoveryType)),
		priorityBadge(rec.Priority)))

	rows := [][]string{
		{"Actual recovery", FormatHours(rec.ActualRecoveryHours)},
		{"Recovery debt", FormatHours(rec.RecoveryDebt)},
		{"Break quality", fmt.Sprintf("%.0f%%", rec.BreakQuality*100)},
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows))

	if len(rec.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(BulletList(rec.Suggestions) + "\n")
	}

	return RenderBox("Recovery", b.String())
}

func priorityBadge(p domain.RiskLevel) string {
	switch p {
	case domain.RiskHigh:
		return StyleRed.Render("priority: high")
	case domain.RiskMedium:
		return StyleYellow.Render("priority: medium")
	default:
		return StyleGreen.Render("priority: low")
	}
}
