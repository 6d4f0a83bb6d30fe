package engine

import (
	"math"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/temporal"
)

// intensiveDayCount is the appointment count at which a day joins a
// consecutive-intensity run for the stress model.
const intensiveDayCount = 6

// stressTally accumulates risk indicators during a single scoring call.
// It is constructed fresh per invocation; nothing leaks across calls.
type stressTally struct {
	indicators int
}

func (t *stressTally) add(points int) {
	t.indicators += points
}

// scorePredictiveStress is the sixth dimension: an indicator-accumulation
// heuristic rather than a rule-based subtraction score. Rapid back-to-back
// transitions and runs of intensive days accumulate indicator points, which
// are normalized against the appointment volume.
func (e *Engine) scorePredictiveStress(appts []domain.Appointment) int {
	if len(appts) == 0 {
		return 100
	}

	tally := &stressTally{}
	buckets := temporal.GroupByDay(appts)

	for _, day := range buckets {
		for _, gap := range temporal.DayGaps(day) {
			switch {
			case gap < 10:
				tally.add(2)
			case gap < 20:
				tally.add(1)
			}
		}
	}

	// A single sustained run of intensive days weighs more than scattered
	// ones; only the longest run scores.
	tally.add(3 * longestIntensiveRun(buckets))

	ratio := math.Min(float64(tally.indicators)/(float64(len(appts))*0.5), 1)
	return int(math.Round((1 - ratio) * 100))
}

// longestIntensiveRun finds the longest chain of consecutive calendar days
// whose appointment count reaches intensiveDayCount.
func longestIntensiveRun(buckets map[temporal.DayKey][]domain.Appointment) int {
	keys := temporal.SortedKeys(buckets)
	longest, run := 0, 0
	var prev temporal.DayKey

	for _, k := range keys {
		if len(buckets[k]) < intensiveDayCount {
			run = 0
			prev = ""
			continue
		}
		if prev != "" && k.Date().Sub(prev.Date()) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = k
	}
	return longest
}
