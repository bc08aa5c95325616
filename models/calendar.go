package models

import "time"

// MeetingDuration is the fixed length of every booked meeting.
const MeetingDuration = 30 * time.Minute

// CalendarEvent is an existing event on the user's calendar. Events are
// read-only to the conversation core; the calendar backend owns them.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Summary  string    `json:"summary"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	HTMLLink string    `json:"htmlLink,omitempty"`
}

// TimeWindow is the interval a new booking occupies. It is only ever
// constructed at booking time, from a validated start timestamp.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeWindow returns the fixed-duration window [start, start+30m).
func NewTimeWindow(start time.Time) TimeWindow {
	return TimeWindow{Start: start, End: start.Add(MeetingDuration)}
}
