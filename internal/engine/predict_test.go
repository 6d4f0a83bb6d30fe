package engine

import (
	"testing"
	"time"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/temporal"
	"github.com/harmonialabs/harmonia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictOverload_QuietHorizonIsLowRisk(t *testing.T) {
	e := NewDefault()
	appts := testutil.Week(monday, 5, 9, 3, 60, 30)

	forecast := e.PredictOverload(appts, 7, monday)
	require.Len(t, forecast.Predictions, 7)
	assert.Equal(t, domain.RiskLow, forecast.OverallRisk)
	for _, p := range forecast.Predictions {
		assert.Equal(t, domain.RiskLow, p.RiskLevel)
		assert.Equal(t, "No action needed.", p.Recommendation)
	}
}

func TestPredictOverload_WorstDayDrivesOverallRisk(t *testing.T) {
	e := NewDefault()
	// Three consecutive afternoons with 12 bookings running past 18:00:
	// high load + consecutive stress + evening-heavy on the third day.
	appts := testutil.Week(monday, 3, 14, 12, 30, 0)

	forecast := e.PredictOverload(appts, 7, monday.AddDate(0, 0, 2))
	require.NotEmpty(t, forecast.Predictions)

	worst := forecast.Predictions[0]
	assert.Equal(t, domain.RiskHigh, worst.RiskLevel)
	assert.Contains(t, worst.RiskFactors, contract.FactorHighLoad)
	assert.Contains(t, worst.RiskFactors, contract.FactorConsecutiveStress)
	assert.Contains(t, worst.RiskFactors, contract.FactorEveningHeavy)

	// A single high-risk day outweighs six quiet ones in the aggregate.
	assert.Equal(t, domain.RiskHigh, forecast.OverallRisk)
	for _, p := range forecast.Predictions[1:] {
		assert.NotEqual(t, domain.RiskHigh, p.RiskLevel)
	}
}

func TestPredictOverload_HighLoadAlonePrioritizesItsMessage(t *testing.T) {
	e := NewDefault()
	// 9 morning bookings: danger tier, but only one risk factor.
	appts := testutil.Day(monday, 8, 9, 30, 0)

	forecast := e.PredictOverload(appts, 1, monday)
	require.Len(t, forecast.Predictions, 1)

	p := forecast.Predictions[0]
	assert.Equal(t, domain.RiskLow, p.RiskLevel)
	assert.Equal(t, []contract.RiskFactor{contract.FactorHighLoad}, p.RiskFactors)
	assert.Contains(t, p.Recommendation, "Reduce the appointment count")
}

func TestPredictOverload_DefaultHorizon(t *testing.T) {
	e := NewDefault()
	forecast := e.PredictOverload(nil, 0, monday)
	assert.Equal(t, DefaultHorizonDays, forecast.HorizonDays)
	assert.Len(t, forecast.Predictions, DefaultHorizonDays)
}

func TestConsecutiveIntensity_StopsAtLightDay(t *testing.T) {
	e := NewDefault()
	appts := testutil.Day(monday, 8, 9, 30, 0)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 1), 9, 2, 60, 30)...)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 2), 8, 10, 30, 0)...)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 3), 8, 9, 30, 0)...)
	buckets := temporal.GroupByDay(appts)

	assert.Equal(t, 2, e.consecutiveIntensity(monday.AddDate(0, 0, 3), buckets))
	assert.Equal(t, 1, e.consecutiveIntensity(monday, buckets))
	assert.Equal(t, 0, e.consecutiveIntensity(monday.AddDate(0, 0, 1), buckets))
}

func TestRecoveryDebtThrough_Accumulates(t *testing.T) {
	e := NewDefault()
	// 5 days of one solid 10h block each: ideal rest 2.5h/day, none taken.
	var appts []domain.Appointment
	for d := 0; d < 5; d++ {
		appts = append(appts, testutil.NewAppointment(monday.AddDate(0, 0, d).Add(8*time.Hour), 600))
	}
	buckets := temporal.GroupByDay(appts)

	assert.InDelta(t, 12.5, e.recoveryDebtThrough(monday.AddDate(0, 0, 4), buckets), 0.01)
	assert.InDelta(t, 5.0, e.recoveryDebtThrough(monday.AddDate(0, 0, 1), buckets), 0.01)
}
