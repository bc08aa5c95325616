package calendar

import (
	"context"
	"time"

	"tailortalk/models"
)

// Client is the calendar backend the assistant talks to. Two interchangeable
// implementations exist: the Google-Calendar-backed client and the
// deterministic simulator. The conversation core depends only on this
// interface.
type Client interface {
	// ListUpcomingEvents returns the next events on the calendar, sorted
	// ascending by start time and capped at a small count.
	ListUpcomingEvents(ctx context.Context) ([]models.CalendarEvent, error)

	// CreateEvent books [start, end) and returns a link to the created event.
	CreateEvent(ctx context.Context, start, end time.Time, summary string) (string, error)
}
