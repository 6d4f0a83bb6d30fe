package temporal

import (
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// MinutesBetween returns the whole minutes from a to b (negative if b < a).
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a).Minutes())
}

// Overlaps reports whether two appointments share any time (touching
// boundaries do not overlap).
func Overlaps(a, b domain.Appointment) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// DayGaps returns the minute gaps between consecutive appointments of one
// day, sorted by start time. A negative gap (overlap) is reported as 0.
func DayGaps(appts []domain.Appointment) []int {
	if len(appts) < 2 {
		return nil
	}
	sorted := SortByStart(appts)
	gaps := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		g := MinutesBetween(sorted[i-1].End, sorted[i].Start)
		if g < 0 {
			g = 0
		}
		gaps = append(gaps, g)
	}
	return gaps
}

// DateRange returns every calendar date from start to end inclusive,
// stepping one day at a time.
func DateRange(start, end time.Time) []time.Time {
	var days []time.Time
	y, m, d := start.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	for !cur.After(end) {
		days = append(days, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// TotalMinutes sums the booked duration of all appointments.
func TotalMinutes(appts []domain.Appointment) int {
	total := 0
	for _, a := range appts {
		total += a.DurationMin()
	}
	return total
}

// TotalHours is TotalMinutes expressed in fractional hours.
func TotalHours(appts []domain.Appointment) float64 {
	return float64(TotalMinutes(appts)) / 60
}
