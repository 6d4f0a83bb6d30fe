package contract

import (
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// RiskFactor names one boolean overload indicator for a predicted day.
type RiskFactor string

const (
	FactorHighLoad          RiskFactor = "HIGH_LOAD"
	FactorPoorRecovery      RiskFactor = "POOR_RECOVERY"
	FactorConsecutiveStress RiskFactor = "CONSECUTIVE_STRESS"
	FactorEveningHeavy      RiskFactor = "EVENING_HEAVY"
)

type PredictionRecord struct {
	Date           string
	DailyScore     int
	RiskLevel      domain.RiskLevel
	RiskFactors    []RiskFactor
	Recommendation string
}

type OverloadForecast struct {
	GeneratedAt        time.Time
	HorizonDays        int
	Predictions        []PredictionRecord
	OverallRisk        domain.RiskLevel
	ActionableInsights []string
}

type CriticalDay struct {
	Date             string
	Severity         domain.Severity
	Factors          []string
	EventCount       int
	TotalHours       float64
	SuggestedActions []string
}

type BlockSuggestion struct {
	Date      string
	StartHour int
	EndHour   int
	Reason    string
	Urgency   domain.Urgency
}

// BlockSuggestionSet partitions the combined suggestion list by urgency.
type BlockSuggestionSet struct {
	Immediate  []BlockSuggestion
	Planned    []BlockSuggestion
	Preventive []BlockSuggestion
	Recovery   []BlockSuggestion
}

type RecoveryRecommendation struct {
	RecommendedHours    float64
	RecoveryType        domain.RecoveryType
	RecoveryDebt        float64
	BreakQuality        float64
	ActualRecoveryHours float64
	Suggestions         []string
	Priority            domain.RiskLevel
}
