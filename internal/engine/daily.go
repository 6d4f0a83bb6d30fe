package engine

import (
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// DailyScore scores a single calendar date independently of the weekly
// aggregate. Only that date's scorable appointments participate.
func (e *Engine) DailyScore(date time.Time, appts []domain.Appointment) contract.DailyScoreResult {
	key := temporal.KeyFor(date)
	day := temporal.GroupByDay(domain.FilterScorable(appts))[key]

	count := len(day)
	hours := temporal.TotalHours(day)
	intensity := e.thresholds.LoadIntensityFor(count)
	evening, night := e.daypartPresence(day)
	breakScore := e.scoreBreakCompliance(day)

	score := 100
	score -= dailyCountPenalty(intensity)

	switch {
	case hours > 10:
		score -= 15
	case hours > 8:
		score -= 8
	}

	switch {
	case night:
		score -= 20
	case evening:
		score -= 10
	}

	// A day with no intra-day gaps has a perfect break score and still
	// earns the bonus.
	switch {
	case breakScore > 80:
		score += 5
	case breakScore < 50:
		score -= 10
	}

	if e.isClustered(day) {
		score -= 10
	}

	score = stats.ClampInt(score, 0, 100)

	return contract.DailyScoreResult{
		Date:             string(key),
		Score:            score,
		Level:            e.thresholds.ScoreLevelFor(score),
		AppointmentCount: count,
		TotalWorkHours:   stats.Round1(hours),
		HasEveningWork:   evening || night,
		HasNightWork:     night,
		BreakCompliance:  breakScore,
		Intensity:        intensity,
	}
}

func dailyCountPenalty(tier domain.Intensity) int {
	switch tier {
	case domain.IntensityOptimal:
		return 0
	case domain.IntensityGood:
		return 5
	case domain.IntensityWarning:
		return 20
	case domain.IntensityDanger:
		return 40
	default:
		return 60
	}
}

func (e *Engine) daypartPresence(day []domain.Appointment) (evening, night bool) {
	for _, a := range day {
		switch {
		case a.Start.Hour() >= e.thresholds.NightHour:
			night = true
		case a.Start.Hour() >= e.thresholds.EveningHour:
			evening = true
		}
	}
	return evening, night
}

// isClustered reports whether the day's appointments sit in one dense span
// instead of being spread across working hours: three or more bookings whose
// overall span exceeds the booked minutes by less than 20%.
func (e *Engine) isClustered(day []domain.Appointment) bool {
	if len(day) < 3 {
		return false
	}
	sorted := temporal.SortByStart(day)
	span := temporal.MinutesBetween(sorted[0].Start, sorted[len(sorted)-1].End)
	booked := temporal.TotalMinutes(sorted)
	return float64(span) < float64(booked)*1.2
}
