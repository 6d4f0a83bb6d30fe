package engine

import (
	"fmt"
	"math"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// RecoveryRecommendation derives the recommended rest allocation and the
// recovery debt from aggregate load and the rest actually observed in the
// schedule. Hour values are rounded to one decimal place.
func (e *Engine) RecoveryRecommendation(appts []domain.Appointment) contract.RecoveryRecommendation {
	scorable := domain.FilterScorable(appts)

	totalHours := temporal.TotalHours(scorable)
	dayCount := len(temporal.GroupByDay(scorable))
	meanDaily := 0.0
	if dayCount > 0 {
		meanDaily = totalHours / float64(dayCount)
	}

	recommended, recoveryType := baseRecovery(totalHours, meanDaily, e.thresholds)

	quality := e.breakQuality(scorable)
	if quality < 0.5 {
		recommended *= 1.3
	}

	actual := e.actualRecoveryHours(scorable)
	debt := math.Max(0, recommended-actual)

	priority := domain.RiskLow
	switch {
	case debt > 8:
		priority = domain.RiskHigh
	case debt > 4:
		priority = domain.RiskMedium
	}

	return contract.RecoveryRecommendation{
		RecommendedHours:    stats.Round1(recommended),
		RecoveryType:        recoveryType,
		RecoveryDebt:        stats.Round1(debt),
		BreakQuality:        stats.Round1(quality*100) / 100,
		ActualRecoveryHours: stats.Round1(actual),
		Suggestions:         recoverySuggestions(recoveryType, quality, e.settings),
		Priority:            priority,
	}
}

// baseRecovery matches the four mutually exclusive hour tiers top-down.
func baseRecovery(totalHours, meanDaily float64, t Thresholds) (float64, domain.RecoveryType) {
	switch {
	case totalHours > t.RecoveryCriticalHours:
		return math.Min(24, (totalHours-40)*0.8), domain.RecoveryExtended
	case totalHours > t.RecoveryDangerHours:
		return math.Min(16, (totalHours-35)*0.6), domain.RecoverySignificant
	case totalHours > t.RecoveryWarningHours:
		return math.Min(8, (totalHours-32)*0.5), domain.RecoveryModerate
	case meanDaily > 7:
		return 4, domain.RecoveryLight
	default:
		return 0, domain.RecoveryNone
	}
}

func recoverySuggestions(rt domain.RecoveryType, quality float64, s domain.Settings) []string {
	var out []string
	switch rt {
	case domain.RecoveryExtended:
		out = append(out, "Take at least one full day off before the next working week.")
	case domain.RecoverySignificant:
		out = append(out, "Block two half-days for recovery this week.")
	case domain.RecoveryModerate:
		out = append(out, "Reserve one protected half-day without bookings.")
	case domain.RecoveryLight:
		out = append(out, "Finish one day this week at least two hours early.")
	}
	if quality < 0.5 {
		out = append(out, fmt.Sprintf("Restore the %d-minute gaps between appointments before adding rest days.", s.BreakDurationMin))
	}
	return out
}
