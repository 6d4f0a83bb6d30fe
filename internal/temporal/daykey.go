package temporal

import (
	"sort"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// DayKey identifies one calendar date (YYYY-MM-DD). All timestamps are
// assumed pre-normalized to one reference location upstream; the key is
// derived from calendar-date extraction, never from string slicing.
type DayKey string

// KeyFor returns the DayKey of t's calendar date.
func KeyFor(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey(time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Format("2006-01-02"))
}

// Date returns the midnight time for the key, in UTC.
func (k DayKey) Date() time.Time {
	t, err := time.Parse("2006-01-02", string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// GroupByDay buckets appointments by the calendar date of their start time.
// An appointment spanning midnight is attributed entirely to its start day.
func GroupByDay(appts []domain.Appointment) map[DayKey][]domain.Appointment {
	buckets := make(map[DayKey][]domain.Appointment)
	for _, a := range appts {
		k := KeyFor(a.Start)
		buckets[k] = append(buckets[k], a)
	}
	return buckets
}

// SortedKeys returns the bucket keys in chronological order.
func SortedKeys(buckets map[DayKey][]domain.Appointment) []DayKey {
	keys := make([]DayKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SortByStart orders appointments by start time ascending, stable on ID for
// identical starts. Returns a copy; the input slice is never mutated.
func SortByStart(appts []domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, len(appts))
	copy(out, appts)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
