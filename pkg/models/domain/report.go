package domain

import "time"

// RunReport summarizes one synthesis run for terminal output.
type RunReport struct {
	Start       time.Time
	End         time.Time
	TotalEvents int
	Days        []DaySummary
}

// DaySummary counts the events placed on a single date.
type DaySummary struct {
	Date       time.Time
	Events     int
	ByCategory map[EventCategory]int
}

// BuildRunReport derives the per-day summary from a finished collection.
// Events arrive in date order, so days are emitted in date order too.
func BuildRunReport(start, end time.Time, col *CalendarCollection) RunReport {
	report := RunReport{Start: start, End: end, TotalEvents: col.Len()}

	var current *DaySummary
	for _, ev := range col.Events() {
		day := time.Date(ev.Date.Year(), ev.Date.Month(), ev.Date.Day(), 0, 0, 0, 0, ev.Date.Location())
		if current == nil || !current.Date.Equal(day) {
			report.Days = append(report.Days, DaySummary{
				Date:       day,
				ByCategory: map[EventCategory]int{},
			})
			current = &report.Days[len(report.Days)-1]
		}
		current.Events++
		current.ByCategory[ev.Category]++
	}
	return report
}
