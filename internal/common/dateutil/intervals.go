// Package dateutil splits statement date ranges into the bounded windows the
// bank API accepts per request.
package dateutil

import "time"

// DateInterval is a half-open [Start, End) statement window.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Span returns the interval length.
func (i DateInterval) Span() time.Duration {
	return i.End.Sub(i.Start)
}

// CreateDateIntervals covers [fromDate, toDate) with contiguous windows of at
// most window size. Consecutive windows are separated by gap so a boundary
// instant is never fetched twice; the last window is clamped to toDate.
// Returns nil when fromDate is not before toDate.
func CreateDateIntervals(fromDate, toDate time.Time, window, gap time.Duration) []DateInterval {
	if !fromDate.Before(toDate) || window <= gap {
		return nil
	}

	var intervals []DateInterval
	start := fromDate
	for start.Before(toDate) {
		end := start.Add(window - gap)
		if end.After(toDate) {
			end = toDate
		}
		intervals = append(intervals, DateInterval{Start: start, End: end})
		start = end.Add(gap)
	}
	return intervals
}
