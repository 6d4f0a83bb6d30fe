package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// DefaultHorizonDays bounds the prediction window when the caller does not.
const DefaultHorizonDays = 7

// PredictOverload projects daily scores and risk factors across the horizon
// starting at now's calendar date. Each horizon day gets a risk level built
// from four boolean factors; the aggregate outlook is the risk level of the
// worst single day in the horizon.
func (e *Engine) PredictOverload(appts []domain.Appointment, horizonDays int, now time.Time) contract.OverloadForecast {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	scorable := domain.FilterScorable(appts)
	buckets := temporal.GroupByDay(scorable)

	predictions := make([]contract.PredictionRecord, 0, horizonDays)
	overall := domain.RiskLow
	highCount := 0

	for offset := 0; offset < horizonDays; offset++ {
		date := now.AddDate(0, 0, offset)
		rec := e.predictDay(date, scorable, buckets)
		predictions = append(predictions, rec)

		if riskPriority(rec.RiskLevel) < riskPriority(overall) {
			overall = rec.RiskLevel
		}
		if rec.RiskLevel == domain.RiskHigh {
			highCount++
		}
	}

	return contract.OverloadForecast{
		GeneratedAt:        now,
		HorizonDays:        horizonDays,
		Predictions:        predictions,
		OverallRisk:        overall,
		ActionableInsights: forecastInsights(predictions, highCount),
	}
}

func (e *Engine) predictDay(date time.Time, appts []domain.Appointment, buckets map[temporal.DayKey][]domain.Appointment) contract.PredictionRecord {
	key := temporal.KeyFor(date)
	day := buckets[key]
	daily := e.DailyScore(date, appts)

	highLoad := daily.Intensity == domain.IntensityDanger || daily.Intensity == domain.IntensityCritical
	debt := e.recoveryDebtThrough(date, buckets)
	consecutive := e.consecutiveIntensity(date, buckets)
	_, night := e.daypartPresence(day)
	evening := daily.HasEveningWork && !night

	var factors []contract.RiskFactor
	if highLoad {
		factors = append(factors, contract.FactorHighLoad)
	}
	if debt > 20 {
		factors = append(factors, contract.FactorPoorRecovery)
	}
	if consecutive > 2 {
		factors = append(factors, contract.FactorConsecutiveStress)
	}
	if night || (evening && daily.AppointmentCount > 5) {
		factors = append(factors, contract.FactorEveningHeavy)
	}

	level := domain.RiskLow
	switch {
	case len(factors) >= 3:
		level = domain.RiskHigh
	case len(factors) >= 2:
		level = domain.RiskMedium
	}

	return contract.PredictionRecord{
		Date:           string(key),
		DailyScore:     daily.Score,
		RiskLevel:      level,
		RiskFactors:    factors,
		Recommendation: dayRecommendation(factors),
	}
}

// consecutiveIntensity counts how many immediately preceding days, including
// the given one, sit in the danger or critical load band.
func (e *Engine) consecutiveIntensity(date time.Time, buckets map[temporal.DayKey][]domain.Appointment) int {
	count := 0
	for d := date; ; d = d.AddDate(0, 0, -1) {
		n := len(buckets[temporal.KeyFor(d)])
		tier := e.thresholds.LoadIntensityFor(n)
		if n == 0 || (tier != domain.IntensityDanger && tier != domain.IntensityCritical) {
			break
		}
		count++
	}
	return count
}

// recoveryDebtThrough accumulates the shortfall between ideal and actual
// rest over every bucketed day up to and including the given date.
func (e *Engine) recoveryDebtThrough(date time.Time, buckets map[temporal.DayKey][]domain.Appointment) float64 {
	cutoff := temporal.KeyFor(date)
	debt := 0.0
	for _, k := range temporal.SortedKeys(buckets) {
		if k > cutoff {
			break
		}
		day := buckets[k]
		ideal := temporal.TotalHours(day) * e.thresholds.IdealBreakRatio
		actual := e.actualRecoveryHours(day)
		debt += math.Max(0, ideal-actual)
	}
	return stats.Round1(debt)
}

// dayRecommendation picks the message for the highest-priority factor set.
func dayRecommendation(factors []contract.RiskFactor) string {
	has := func(f contract.RiskFactor) bool {
		for _, x := range factors {
			if x == f {
				return true
			}
		}
		return false
	}
	switch {
	case has(contract.FactorHighLoad):
		return "Reduce the appointment count for this day or move bookings to a lighter day."
	case has(contract.FactorPoorRecovery):
		return "Schedule a recovery block before this day; accumulated rest debt is high."
	case has(contract.FactorConsecutiveStress):
		return "This extends a streak of intensive days; plan a lighter day soon."
	case has(contract.FactorEveningHeavy):
		return "Evening-heavy schedule; shift late bookings earlier where possible."
	default:
		return "No action needed."
	}
}

func forecastInsights(predictions []contract.PredictionRecord, highCount int) []string {
	var out []string
	if highCount > 0 {
		out = append(out, fmt.Sprintf("%d of %d days in the horizon are at high overload risk.", highCount, len(predictions)))
	}
	poorRecovery := 0
	for _, p := range predictions {
		for _, f := range p.RiskFactors {
			if f == contract.FactorPoorRecovery {
				poorRecovery++
				break
			}
		}
	}
	if poorRecovery > 0 {
		out = append(out, "Recovery debt keeps accumulating across the horizon; rest blocks are overdue.")
	}
	if len(out) == 0 {
		out = append(out, "No elevated overload risk in the prediction horizon.")
	}
	return out
}

// riskPriority returns a sort priority (lower = more severe).
func riskPriority(r domain.RiskLevel) int {
	switch r {
	case domain.RiskHigh:
		return 0
	case domain.RiskMedium:
		return 1
	default:
		return 2
	}
}
