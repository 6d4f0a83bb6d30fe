package engine

import (
	"math"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// Each dimension scorer is a pure function appointments -> [0,100],
// penalizing undesirable patterns from a ceiling of 100. An empty input
// means no detected problem and scores 100.

func (e *Engine) scoreDailyLoad(appts []domain.Appointment) int {
	buckets := temporal.GroupByDay(appts)
	if len(buckets) == 0 {
		return 100
	}

	counts := make([]float64, 0, len(buckets))
	maxCount := 0
	for _, day := range buckets {
		counts = append(counts, float64(len(day)))
		if len(day) > maxCount {
			maxCount = len(day)
		}
	}
	mean := stats.Average(counts)
	deviation := stats.StdDev(counts)

	score := 100
	score -= meanLoadPenalty(e.thresholds.LoadIntensityFor(int(math.Ceil(mean))))

	switch e.thresholds.LoadIntensityFor(maxCount) {
	case domain.IntensityDanger:
		score -= 15
	case domain.IntensityCritical:
		score -= 25
	}

	// Irregular day-to-day load is its own stressor.
	if deviation > 3 {
		score -= 10
	}

	return stats.ClampInt(score, 0, 100)
}

func meanLoadPenalty(tier domain.Intensity) int {
	switch tier {
	case domain.IntensityOptimal:
		return 0
	case domain.IntensityGood:
		return 10
	case domain.IntensityWarning:
		return 20
	case domain.IntensityDanger:
		return 35
	default:
		return 45
	}
}

func (e *Engine) scoreBreakCompliance(appts []domain.Appointment) int {
	total, compliant, gapSum := e.gapCounts(appts)
	if total == 0 {
		return 100
	}

	score := int(math.Round(float64(compliant) / float64(total) * 100))

	meanGap := float64(gapSum) / float64(total)
	if meanGap > 1.5*float64(e.settings.BreakDurationMin) {
		score += 5
	}

	return stats.ClampInt(score, 0, 100)
}

// gapCounts runs the per-day gap analysis shared by Break Compliance and
// the recovery metrics: total gap count, compliant gap count, and the summed
// gap minutes. Gaps are intra-day only.
func (e *Engine) gapCounts(appts []domain.Appointment) (total, compliant, gapSum int) {
	for _, day := range temporal.GroupByDay(appts) {
		for _, gap := range temporal.DayGaps(day) {
			total++
			gapSum += gap
			if gap >= e.settings.BreakDurationMin {
				compliant++
			}
		}
	}
	return total, compliant, gapSum
}

func (e *Engine) scoreEveningWork(appts []domain.Appointment) int {
	if len(appts) == 0 {
		return 100
	}

	evening, night := 0, 0
	for _, a := range appts {
		hour := a.Start.Hour()
		switch {
		case hour >= e.thresholds.NightHour:
			night++
		case hour >= e.thresholds.EveningHour:
			evening++
		}
	}

	total := float64(len(appts))
	penalty := float64(evening)/total*40 + float64(night)/total*60
	return stats.ClampInt(100-int(math.Round(penalty)), 0, 100)
}

func (e *Engine) scoreWeeklyBalance(appts []domain.Appointment) int {
	hours := temporal.TotalHours(appts)
	t := e.thresholds

	// Four linear decay segments keyed to the weekly hour bands, with
	// floors at 80 / 60 / 30 / 0.
	var score float64
	switch {
	case hours <= t.WeeklyOptimalHours:
		score = 100
	case hours <= t.WeeklyGoodHours:
		score = 100 - (hours-t.WeeklyOptimalHours)/(t.WeeklyGoodHours-t.WeeklyOptimalHours)*20
	case hours <= t.WeeklyWarningHours:
		score = 80 - (hours-t.WeeklyGoodHours)/(t.WeeklyWarningHours-t.WeeklyGoodHours)*20
	case hours <= t.WeeklyDangerHours:
		score = 60 - (hours-t.WeeklyWarningHours)/(t.WeeklyDangerHours-t.WeeklyWarningHours)*30
	default:
		score = 30 - (hours-t.WeeklyDangerHours)*3
	}

	return stats.ClampInt(int(math.Round(score)), 0, 100)
}

func (e *Engine) scoreRecoveryAdequacy(appts []domain.Appointment) int {
	actual := e.actualRecoveryHours(appts)
	ideal := temporal.TotalHours(appts) * e.thresholds.IdealBreakRatio
	if ideal <= 0 || actual >= ideal {
		return 100
	}
	return stats.ClampInt(int(math.Round(actual/ideal*100)), 0, 100)
}

// actualRecoveryHours sums the intra-day gaps long enough to count as rest.
// Inter-day idle time is deliberately out of scope here.
func (e *Engine) actualRecoveryHours(appts []domain.Appointment) float64 {
	minutes := 0
	for _, day := range temporal.GroupByDay(appts) {
		for _, gap := range temporal.DayGaps(day) {
			if gap >= e.settings.BreakDurationMin {
				minutes += gap
			}
		}
	}
	return float64(minutes) / 60
}

// breakQuality is the compliant-gap ratio in [0,1]; a schedule with no gaps
// to violate has quality 1.
func (e *Engine) breakQuality(appts []domain.Appointment) float64 {
	total, compliant, _ := e.gapCounts(appts)
	if total == 0 {
		return 1
	}
	return float64(compliant) / float64(total)
}
