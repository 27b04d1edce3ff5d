package domain

// CalendarCollection is the ordered, append-only event accumulator for one
// synthesis run. Each run owns its own instance; it is handed off whole to
// the serializer and is never shared between runs.
type CalendarCollection struct {
	events []Event
}

func NewCalendarCollection() *CalendarCollection {
	return &CalendarCollection{}
}

func (c *CalendarCollection) Append(events ...Event) {
	c.events = append(c.events, events...)
}

// Events returns the accumulated events in append order.
func (c *CalendarCollection) Events() []Event {
	return c.events
}

func (c *CalendarCollection) Len() int {
	return len(c.events)
}
