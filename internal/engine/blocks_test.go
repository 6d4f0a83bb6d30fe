package engine

import (
	"testing"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestBlocks_CriticalDayBecomesImmediate(t *testing.T) {
	e := NewDefault()
	appts := testutil.Day(monday, 8, 13, 30, 0)

	set := e.SuggestBlocks(appts)
	require.Len(t, set.Immediate, 1)
	assert.Equal(t, "2025-06-02", set.Immediate[0].Date)
	assert.Equal(t, domain.UrgencyImmediate, set.Immediate[0].Urgency)
	assert.NotEmpty(t, set.Immediate[0].Reason)
	assert.Empty(t, set.Planned)
	assert.Empty(t, set.Preventive)
}

func TestSuggestBlocks_SeverityMapsToUrgency(t *testing.T) {
	e := NewDefault()
	// Critical (13 bookings), high (9 bookings), medium (7 back-to-back).
	appts := testutil.Day(monday, 8, 13, 30, 0)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 1), 8, 9, 30, 30)...)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 2), 9, 7, 30, 0)...)

	set := e.SuggestBlocks(appts)
	assert.Len(t, set.Immediate, 1)
	assert.Len(t, set.Planned, 1)
	assert.Len(t, set.Preventive, 1)
}

func TestSuggestBlocks_ShortInterDayRestSuggestsRecovery(t *testing.T) {
	e := NewDefault()
	// Intensive day ending 18:30, next day starting 06:00: 11.5h rest.
	appts := testutil.Day(monday, 10, 6, 60, 30)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 1), 6, 3, 60, 30)...)

	set := e.SuggestBlocks(appts)
	require.Len(t, set.Recovery, 1)
	assert.Equal(t, "2025-06-03", set.Recovery[0].Date)
	assert.Equal(t, domain.UrgencyRecovery, set.Recovery[0].Urgency)
	assert.Contains(t, set.Recovery[0].Reason, "11.5h rest")
}

func TestSuggestBlocks_AdequateRestProducesNoRecoveryBlock(t *testing.T) {
	e := NewDefault()
	// Intensive day ending 15:30, next day at 09:00: 17.5h rest.
	appts := testutil.Day(monday, 7, 6, 60, 30)
	appts = append(appts, testutil.Day(monday.AddDate(0, 0, 1), 9, 3, 60, 30)...)

	set := e.SuggestBlocks(appts)
	assert.Empty(t, set.Recovery)
}

func TestSuggestBlocks_BalancedWeekIsEmpty(t *testing.T) {
	e := NewDefault()
	appts := testutil.Week(monday, 5, 9, 5, 60, 30)

	set := e.SuggestBlocks(appts)
	assert.Empty(t, set.Immediate)
	assert.Empty(t, set.Planned)
	assert.Empty(t, set.Preventive)
	assert.Empty(t, set.Recovery)
}
