package engine

import "github.com/harmonialabs/harmonia/internal/domain"

// Thresholds is the immutable configuration injected into the engine at
// construction. Engines never share mutable threshold state, so multiple
// engines with different profiles can run concurrently.
type Thresholds struct {
	// Daily load bands keyed by appointment count.
	DailyOptimal int
	DailyGood    int
	DailyWarning int
	DailyDanger  int

	// Weekly hour bands.
	WeeklyOptimalHours float64
	WeeklyGoodHours    float64
	WeeklyWarningHours float64
	WeeklyDangerHours  float64

	// Daypart boundaries (24h clock).
	EveningHour int
	NightHour   int

	// Recovery.
	IdealBreakRatio         float64
	MinInterDayRestHours    float64
	MaxConsecutiveIntensive int
	InsufficientBreakScore  int

	// Recovery recommendation hour tiers.
	RecoveryWarningHours  float64
	RecoveryDangerHours   float64
	RecoveryCriticalHours float64

	// Base dimension weights; must sum to 100.
	Weights Weights
}

// Weights carries the base contribution of each dimension to the composite.
type Weights struct {
	DailyLoad        float64
	BreakCompliance  float64
	EveningWork      float64
	WeeklyBalance    float64
	RecoveryAdequacy float64
	PredictiveStress float64
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.DailyLoad + w.BreakCompliance + w.EveningWork +
		w.WeeklyBalance + w.RecoveryAdequacy + w.PredictiveStress
}

// DefaultThresholds returns the documented default band table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DailyOptimal: 4,
		DailyGood:    6,
		DailyWarning: 8,
		DailyDanger:  10,

		WeeklyOptimalHours: 25,
		WeeklyGoodHours:    32,
		WeeklyWarningHours: 40,
		WeeklyDangerHours:  50,

		EveningHour: 18,
		NightHour:   21,

		IdealBreakRatio:         0.25,
		MinInterDayRestHours:    12,
		MaxConsecutiveIntensive: 3,
		InsufficientBreakScore:  50,

		RecoveryWarningHours:  32,
		RecoveryDangerHours:   40,
		RecoveryCriticalHours: 50,

		Weights: Weights{
			DailyLoad:        25,
			BreakCompliance:  20,
			EveningWork:      15,
			WeeklyBalance:    20,
			RecoveryAdequacy: 15,
			PredictiveStress: 5,
		},
	}
}

// ScoreLevelFor locates a composite score in the qualitative band table.
func (t Thresholds) ScoreLevelFor(score int) domain.ScoreLevel {
	switch {
	case score >= 85:
		return domain.LevelExcellent
	case score >= 70:
		return domain.LevelGood
	case score >= 50:
		return domain.LevelModerate
	case score >= 30:
		return domain.LevelWarning
	default:
		return domain.LevelCritical
	}
}

// LoadIntensityFor classifies a day by appointment count.
func (t Thresholds) LoadIntensityFor(count int) domain.Intensity {
	switch {
	case count <= t.DailyOptimal:
		return domain.IntensityOptimal
	case count <= t.DailyGood:
		return domain.IntensityGood
	case count <= t.DailyWarning:
		return domain.IntensityWarning
	case count <= t.DailyDanger:
		return domain.IntensityDanger
	default:
		return domain.IntensityCritical
	}
}

// WeeklyIntensityFor classifies a week by total scheduled hours.
func (t Thresholds) WeeklyIntensityFor(hours float64) domain.Intensity {
	switch {
	case hours <= t.WeeklyOptimalHours:
		return domain.IntensityOptimal
	case hours <= t.WeeklyGoodHours:
		return domain.IntensityGood
	case hours <= t.WeeklyWarningHours:
		return domain.IntensityWarning
	case hours <= t.WeeklyDangerHours:
		return domain.IntensityDanger
	default:
		return domain.IntensityCritical
	}
}
