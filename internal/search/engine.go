// Package search narrows and orders already-fetched trip bundles for
// display. It is pure: every filter change re-runs Apply over the full
// result set and no state is kept between calls.
package search

import (
	"sort"
	"strconv"
	"strings"

	"dzbooking/internal/models"
)

// Time-of-day buckets for the departure filter. Boundaries are exact hour
// values and the intervals are half-open: a departure before 05:00 or at or
// after 23:00 matches no named bucket.
const (
	BucketAll       = "all"
	BucketMorning   = "morning"   // [05:00, 12:00)
	BucketAfternoon = "afternoon" // [12:00, 17:00)
	BucketEvening   = "evening"   // [17:00, 23:00)
)

// Sort keys. Departure time compares the HH:MM strings directly, which is
// valid because times are zero-padded.
const (
	SortDepartureTime = "departure_time"
	SortPrice         = "price"
	SortDuration      = "duration"
)

// Criteria holds the user-selected predicates and display order.
type Criteria struct {
	// BusTypes is the inclusion set. Nil means all types included.
	BusTypes map[string]bool
	// TimeBucket is one of the Bucket* constants. Empty means BucketAll.
	TimeBucket string
	// SortBy is one of the Sort* constants. Empty means SortDepartureTime.
	SortBy string
}

// DefaultCriteria includes every bus type, all departure times, ordered by
// departure time.
func DefaultCriteria() Criteria {
	return Criteria{
		BusTypes: map[string]bool{
			models.BusStandard: true,
			models.BusPremium:  true,
			models.BusVIP:      true,
		},
		TimeBucket: BucketAll,
		SortBy:     SortDepartureTime,
	}
}

// Apply filters and sorts bundles. The input slice is not modified; ties
// under the sort key keep their original relative order. An empty input is
// not an error and yields an empty, non-nil result.
func Apply(bundles []models.TripBundle, c Criteria) []models.TripBundle {
	out := make([]models.TripBundle, 0, len(bundles))
	for _, b := range bundles {
		if !c.admits(b.Trip) {
			continue
		}
		out = append(out, b)
	}

	sortBy := c.SortBy
	if sortBy == "" {
		sortBy = SortDepartureTime
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Trip, out[j].Trip
		switch sortBy {
		case SortPrice:
			return a.Price < b.Price
		case SortDuration:
			return DurationMinutes(a.DepartureTime, a.ArrivalTime) <
				DurationMinutes(b.DepartureTime, b.ArrivalTime)
		default:
			return a.DepartureTime < b.DepartureTime
		}
	})

	return out
}

func (c Criteria) admits(t models.Trip) bool {
	if c.BusTypes != nil && !c.BusTypes[t.BusType] {
		return false
	}
	bucket := c.TimeBucket
	if bucket == "" || bucket == BucketAll {
		return true
	}
	hour := departureHour(t.DepartureTime)
	switch bucket {
	case BucketMorning:
		return hour >= 5 && hour < 12
	case BucketAfternoon:
		return hour >= 12 && hour < 17
	case BucketEvening:
		return hour >= 17 && hour < 23
	default:
		return false
	}
}

func departureHour(hhmm string) int {
	h, _, ok := splitClock(hhmm)
	if !ok {
		return -1
	}
	return h
}

// DurationMinutes computes arrival minus departure as minutes of clock time.
// A negative raw difference means the trip arrives the next day, so one full
// day is added. Trips spanning more than 24 hours are not representable.
func DurationMinutes(departure, arrival string) int {
	dh, dm, ok := splitClock(departure)
	if !ok {
		return 0
	}
	ah, am, ok := splitClock(arrival)
	if !ok {
		return 0
	}

	minutes := (ah*60 + am) - (dh*60 + dm)
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes
}

// FormatDuration renders minutes as "5h 30m" for display.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return strconv.Itoa(h) + "h"
	}
	return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
}

func splitClock(hhmm string) (hour, minute int, ok bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
