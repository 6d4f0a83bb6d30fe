package engine

import (
	"fmt"
	"sort"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/stats"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// DetectCriticalDays classifies day buckets into severity tiers from raw
// load and recovery signals. Days matching no tier are not reported. The
// result is sorted by severity descending; ties preserve day order.
func (e *Engine) DetectCriticalDays(appts []domain.Appointment) []contract.CriticalDay {
	buckets := temporal.GroupByDay(domain.FilterScorable(appts))

	var out []contract.CriticalDay
	for _, k := range temporal.SortedKeys(buckets) {
		day := buckets[k]
		if cd, ok := e.classifyDay(k, day); ok {
			out = append(out, cd)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return domain.SeverityPriority(out[i].Severity) < domain.SeverityPriority(out[j].Severity)
	})
	return out
}

func (e *Engine) classifyDay(key temporal.DayKey, day []domain.Appointment) (contract.CriticalDay, bool) {
	count := len(day)
	hours := temporal.TotalHours(day)
	breakScore := e.scoreBreakCompliance(day)
	_, night := e.daypartPresence(day)

	var severity domain.Severity
	var factors []string

	switch {
	case count >= 12 || hours > 10:
		severity = domain.SeverityCritical
		if count >= 12 {
			factors = append(factors, fmt.Sprintf("%d appointments in one day", count))
		}
		if hours > 10 {
			factors = append(factors, fmt.Sprintf("%.1f scheduled hours", hours))
		}
	case (count >= 9 && count <= 11) || night:
		severity = domain.SeverityHigh
		if count >= 9 {
			factors = append(factors, fmt.Sprintf("%d appointments in one day", count))
		}
		if night {
			factors = append(factors, "night work present")
		}
	case count >= 7 && count <= 8 && breakScore < e.thresholds.InsufficientBreakScore:
		severity = domain.SeverityMedium
		factors = append(factors,
			fmt.Sprintf("%d appointments with insufficient breaks", count))
	default:
		return contract.CriticalDay{}, false
	}

	return contract.CriticalDay{
		Date:             string(key),
		Severity:         severity,
		Factors:          factors,
		EventCount:       count,
		TotalHours:       stats.Round1(hours),
		SuggestedActions: criticalActions(severity, night),
	}, true
}

func criticalActions(severity domain.Severity, night bool) []string {
	var actions []string
	switch severity {
	case domain.SeverityCritical:
		actions = append(actions,
			"Move at least two bookings to another day.",
			"Block the first free slot for recovery.")
	case domain.SeverityHigh:
		actions = append(actions, "Avoid adding further bookings to this day.")
	case domain.SeverityMedium:
		actions = append(actions, "Lengthen the gaps between consecutive bookings.")
	}
	if night {
		actions = append(actions, "Re-slot night appointments to daytime hours.")
	}
	return actions
}
