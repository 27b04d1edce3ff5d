// Package schedule holds the interval logic behind daily plan synthesis:
// the overlap predicate, work-schedule validation, and the fixed-anchor
// slot search.
package schedule

import "time"

// Overlaps reports whether two half-open intervals intersect. An event
// ending exactly when another begins does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
