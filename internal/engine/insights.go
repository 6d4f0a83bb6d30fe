package engine

import (
	"fmt"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// trends summarizes the day-by-day score trajectory across the period.
func (e *Engine) trends(appts []domain.Appointment) contract.TrendSummary {
	buckets := temporal.GroupByDay(appts)
	keys := temporal.SortedKeys(buckets)
	if len(keys) == 0 {
		return contract.TrendSummary{Direction: contract.TrendStable}
	}

	scores := make([]int, 0, len(keys))
	series := make([]float64, 0, len(keys))
	best, worst := keys[0], keys[0]
	bestScore, worstScore := -1, 101
	for _, k := range keys {
		s := e.DailyScore(k.Date(), buckets[k]).Score
		scores = append(scores, s)
		series = append(series, float64(s))
		if s > bestScore {
			best, bestScore = k, s
		}
		if s < worstScore {
			worst, worstScore = k, s
		}
	}

	slope := stats.LinearSlope(series)
	direction := contract.TrendStable
	switch {
	case slope > 1:
		direction = contract.TrendImproving
	case slope < -1:
		direction = contract.TrendDeclining
	}

	return contract.TrendSummary{
		Direction: direction,
		Slope:     stats.Round1(slope),
		DayScores: scores,
		BestDay:   string(best),
		WorstDay:  string(worst),
	}
}

// insights turns weak dimensions and notable load patterns into short
// human-readable observations for the dashboard.
func (e *Engine) insights(breakdown contract.Breakdown, appts []domain.Appointment) []string {
	var out []string

	if len(appts) == 0 {
		return []string{"No appointments in the analyzed period."}
	}

	if s := breakdown[contract.DimDailyLoad]; s < 50 {
		out = append(out, "Daily appointment volume is well above a sustainable level.")
	}
	if s := breakdown[contract.DimBreakCompliance]; s < 50 {
		out = append(out, fmt.Sprintf("Fewer than half of the gaps between appointments reach the %d-minute break minimum.", e.settings.BreakDurationMin))
	}
	if s := breakdown[contract.DimEveningWork]; s < 70 {
		out = append(out, "A significant share of appointments starts in the evening or at night.")
	}
	if s := breakdown[contract.DimWeeklyBalance]; s < 60 {
		out = append(out, fmt.Sprintf("Scheduled hours exceed the %sh weekly warning band.", trimFloat(e.thresholds.WeeklyWarningHours)))
	}
	if s := breakdown[contract.DimRecoveryAdequacy]; s < 70 {
		out = append(out, "Actual rest falls short of the recommended recovery time for this workload.")
	}
	if s := breakdown[contract.DimPredictiveStress]; s < 50 {
		out = append(out, "Back-to-back bookings and intensive-day streaks indicate building stress.")
	}

	if outliers := dayCountOutliers(appts); len(outliers) > 0 {
		out = append(out, fmt.Sprintf("%d day(s) carry an unusually high appointment count compared to the rest of the period.", len(outliers)))
	}

	if len(out) == 0 {
		out = append(out, "The schedule looks balanced across all dimensions.")
	}
	return out
}

// dayCountOutliers flags days whose appointment count is an IQR outlier.
func dayCountOutliers(appts []domain.Appointment) []float64 {
	buckets := temporal.GroupByDay(appts)
	counts := make([]float64, 0, len(buckets))
	for _, k := range temporal.SortedKeys(buckets) {
		counts = append(counts, float64(len(buckets[k])))
	}
	var high []float64
	for _, v := range stats.OutliersIQR(counts) {
		if v > stats.Average(counts) {
			high = append(high, v)
		}
	}
	return high
}

func (e *Engine) recommendations(breakdown contract.Breakdown) []string {
	var out []string
	if breakdown[contract.DimDailyLoad] < 70 {
		out = append(out, fmt.Sprintf("Cap bookings at %d appointments per day.", e.settings.MaxDailyAppointments))
	}
	if breakdown[contract.DimBreakCompliance] < 70 {
		out = append(out, fmt.Sprintf("Hold at least %d minutes between consecutive appointments.", e.settings.BreakDurationMin))
	}
	if breakdown[contract.DimEveningWork] < 70 {
		out = append(out, fmt.Sprintf("Move recurring bookings to before %d:00 where possible.", e.thresholds.EveningHour))
	}
	if breakdown[contract.DimWeeklyBalance] < 70 {
		out = append(out, fmt.Sprintf("Plan the week to stay under %d scheduled hours.", e.settings.MaxWeeklyHours))
	}
	if breakdown[contract.DimRecoveryAdequacy] < 70 {
		out = append(out, "Reserve dedicated recovery blocks before taking on new bookings.")
	}
	if breakdown[contract.DimPredictiveStress] < 70 {
		out = append(out, "Break up streaks of intensive days with a lighter day in between.")
	}
	return out
}

func trimFloat(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
