package contract

import (
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// Dimension names the six well-being sub-scores.
type Dimension string

const (
	DimDailyLoad        Dimension = "daily_load"
	DimBreakCompliance  Dimension = "break_compliance"
	DimEveningWork      Dimension = "evening_work"
	DimWeeklyBalance    Dimension = "weekly_balance"
	DimRecoveryAdequacy Dimension = "recovery_adequacy"
	DimPredictiveStress Dimension = "predictive_stress"
)

// AllDimensions lists the dimensions in canonical presentation order.
var AllDimensions = []Dimension{
	DimDailyLoad,
	DimBreakCompliance,
	DimEveningWork,
	DimWeeklyBalance,
	DimRecoveryAdequacy,
	DimPredictiveStress,
}

// Breakdown maps each dimension to its integer 0-100 sub-score.
type Breakdown map[Dimension]int

type WeeklyScoreRequest struct {
	Now       *time.Time
	WeekStart *time.Time
	WeekEnd   *time.Time
}

type TrendSummary struct {
	Direction TrendDirection
	Slope     float64
	DayScores []int
	BestDay   string
	WorstDay  string
}

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

type WeeklyScoreResult struct {
	Score           int
	Level           domain.ScoreLevel
	Breakdown       Breakdown
	Trends          TrendSummary
	Insights        []string
	Recommendations []string
	CriticalDays    []CriticalDay
	Recovery        RecoveryRecommendation
	Fallback        bool
	ComputedAt      time.Time
}

type DailyScoreResult struct {
	Date             string
	Score            int
	Level            domain.ScoreLevel
	AppointmentCount int
	TotalWorkHours   float64
	HasEveningWork   bool
	HasNightWork     bool
	BreakCompliance  int
	Intensity        domain.Intensity
}
