package engine

import (
	"math"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// adjustWeights applies the context-dependent re-weighting rules and
// re-normalizes so the six weights sum to exactly 100. Both rules are
// independent and may apply together.
func (e *Engine) adjustWeights(appts []domain.Appointment) Weights {
	w := e.thresholds.Weights

	if hasIntensiveDay(appts) {
		w.BreakCompliance += 5
		w.DailyLoad -= 5
	}
	if temporal.TotalHours(appts) > 35 {
		w.WeeklyBalance += 5
		w.EveningWork -= 5
	}

	sum := w.Sum()
	if sum == 0 {
		return DefaultThresholds().Weights
	}
	factor := 100 / sum
	w.DailyLoad *= factor
	w.BreakCompliance *= factor
	w.EveningWork *= factor
	w.WeeklyBalance *= factor
	w.RecoveryAdequacy *= factor
	w.PredictiveStress *= factor
	return w
}

// hasIntensiveDay reports whether any day bucket holds 8+ appointments.
func hasIntensiveDay(appts []domain.Appointment) bool {
	for _, day := range temporal.GroupByDay(appts) {
		if len(day) >= 8 {
			return true
		}
	}
	return false
}

// composite folds the six sub-scores into the 0-100 Harmony Score.
func composite(breakdown contract.Breakdown, w Weights) int {
	weightFor := map[contract.Dimension]float64{
		contract.DimDailyLoad:        w.DailyLoad,
		contract.DimBreakCompliance:  w.BreakCompliance,
		contract.DimEveningWork:      w.EveningWork,
		contract.DimWeeklyBalance:    w.WeeklyBalance,
		contract.DimRecoveryAdequacy: w.RecoveryAdequacy,
		contract.DimPredictiveStress: w.PredictiveStress,
	}
	// Sum in canonical dimension order so the float accumulation is
	// reproducible run to run.
	score := 0.0
	for _, dim := range contract.AllDimensions {
		score += float64(breakdown[dim]) / 100 * weightFor[dim]
	}
	return stats.ClampInt(int(math.Round(score)), 0, 100)
}
