// Package engine implements the scoring and prediction pipeline behind the
// Harmony Score: six weighted well-being dimensions, short-horizon overload
// prediction, critical-day detection, block suggestions, and recovery
// recommendations. Every entry point is a deterministic pure function of the
// appointment list, the injected thresholds, and the professional settings.
package engine

import (
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
)

type Engine struct {
	thresholds Thresholds
	settings   domain.Settings
}

// New builds an engine around an immutable threshold table and settings
// snapshot. Engines are safe for concurrent use; no state crosses calls.
func New(thresholds Thresholds, settings domain.Settings) *Engine {
	return &Engine{
		thresholds: thresholds,
		settings:   settings.Normalize(),
	}
}

// NewDefault builds an engine with the documented default bands and profile.
func NewDefault() *Engine {
	return New(DefaultThresholds(), domain.DefaultSettings())
}

// WeeklyScore computes the composite Harmony Score with its full breakdown,
// trends, insights, recommendations, critical days, and recovery
// recommendation. Malformed and cancelled appointments are filtered out
// before scoring; an empty filtered set is not an error.
func (e *Engine) WeeklyScore(appts []domain.Appointment, req contract.WeeklyScoreRequest) contract.WeeklyScoreResult {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	scorable := domain.FilterScorable(appts)
	if req.WeekStart != nil && req.WeekEnd != nil {
		scorable = filterRange(scorable, *req.WeekStart, *req.WeekEnd)
	}

	breakdown := contract.Breakdown{
		contract.DimDailyLoad:        e.scoreDailyLoad(scorable),
		contract.DimBreakCompliance:  e.scoreBreakCompliance(scorable),
		contract.DimEveningWork:      e.scoreEveningWork(scorable),
		contract.DimWeeklyBalance:    e.scoreWeeklyBalance(scorable),
		contract.DimRecoveryAdequacy: e.scoreRecoveryAdequacy(scorable),
		contract.DimPredictiveStress: e.scorePredictiveStress(scorable),
	}

	weights := e.adjustWeights(scorable)
	score := composite(breakdown, weights)

	return contract.WeeklyScoreResult{
		Score:           score,
		Level:           e.thresholds.ScoreLevelFor(score),
		Breakdown:       breakdown,
		Trends:          e.trends(scorable),
		Insights:        e.insights(breakdown, scorable),
		Recommendations: e.recommendations(breakdown),
		CriticalDays:    e.DetectCriticalDays(appts),
		Recovery:        e.RecoveryRecommendation(appts),
		ComputedAt:      now,
	}
}

// FallbackWeeklyScore is the documented degraded result returned by the
// service boundary when the pipeline cannot produce a real score. Callers
// always receive a well-formed result.
func FallbackWeeklyScore(now time.Time) contract.WeeklyScoreResult {
	return contract.WeeklyScoreResult{
		Score:      50,
		Level:      domain.LevelModerate,
		Breakdown:  contract.Breakdown{},
		Insights:   []string{"Score could not be computed from the current schedule; showing a neutral baseline."},
		Fallback:   true,
		ComputedAt: now,
	}
}

func filterRange(appts []domain.Appointment, start, end time.Time) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if !a.Start.Before(start) && !a.Start.After(end) {
			out = append(out, a)
		}
	}
	return out
}
