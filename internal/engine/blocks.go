package engine

import (
	"fmt"

	"github.com/harmonialabs/harmonia/internal/contract"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// SuggestBlocks derives schedule-blocking suggestions from the per-day
// analyses: critical days become immediate/planned/preventive blocks by
// severity, and days lacking adequate rest around intensive days produce
// recovery blocks. The four buckets are one partition of a single list.
func (e *Engine) SuggestBlocks(appts []domain.Appointment) contract.BlockSuggestionSet {
	scorable := domain.FilterScorable(appts)
	var all []contract.BlockSuggestion

	for _, cd := range e.DetectCriticalDays(appts) {
		all = append(all, contract.BlockSuggestion{
			Date:      cd.Date,
			StartHour: e.settings.WorkDayStartHour,
			EndHour:   e.settings.WorkDayEndHour,
			Reason:    blockReason(cd),
			Urgency:   urgencyFor(cd.Severity),
		})
	}

	all = append(all, e.recoveryBlocks(scorable)...)

	var set contract.BlockSuggestionSet
	for _, s := range all {
		switch s.Urgency {
		case domain.UrgencyImmediate:
			set.Immediate = append(set.Immediate, s)
		case domain.UrgencyPlanned:
			set.Planned = append(set.Planned, s)
		case domain.UrgencyPreventive:
			set.Preventive = append(set.Preventive, s)
		case domain.UrgencyRecovery:
			set.Recovery = append(set.Recovery, s)
		}
	}
	return set
}

func urgencyFor(severity domain.Severity) domain.Urgency {
	switch severity {
	case domain.SeverityCritical:
		return domain.UrgencyImmediate
	case domain.SeverityHigh:
		return domain.UrgencyPlanned
	default:
		return domain.UrgencyPreventive
	}
}

func blockReason(cd contract.CriticalDay) string {
	if len(cd.Factors) > 0 {
		return fmt.Sprintf("Day classified %s: %s.", cd.Severity, cd.Factors[0])
	}
	return fmt.Sprintf("Day classified %s.", cd.Severity)
}

// recoveryBlocks finds intensive days whose surrounding inter-day rest falls
// below the configured minimum and suggests a protected rest block on the
// following morning.
func (e *Engine) recoveryBlocks(appts []domain.Appointment) []contract.BlockSuggestion {
	buckets := temporal.GroupByDay(appts)
	keys := temporal.SortedKeys(buckets)

	var out []contract.BlockSuggestion
	for i := 0; i < len(keys)-1; i++ {
		day := buckets[keys[i]]
		next := buckets[keys[i+1]]
		if len(day) < intensiveDayCount {
			continue
		}

		sortedDay := temporal.SortByStart(day)
		sortedNext := temporal.SortByStart(next)
		rest := sortedNext[0].Start.Sub(sortedDay[len(sortedDay)-1].End).Hours()
		if rest >= e.thresholds.MinInterDayRestHours {
			continue
		}

		out = append(out, contract.BlockSuggestion{
			Date:      string(keys[i+1]),
			StartHour: e.settings.WorkDayStartHour,
			EndHour:   e.settings.WorkDayStartHour + 2,
			Reason: fmt.Sprintf("Only %.1fh rest after an intensive day; keep the morning free.",
				rest),
			Urgency: domain.UrgencyRecovery,
		})
	}
	return out
}
