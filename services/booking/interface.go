package booking

import (
	"context"
	"time"

	"tailortalk/calendar"
	"tailortalk/models"
)

// SchedulerService carries the calendar-facing scheduling operations: the
// availability check, the booking executor and the slot suggester.
type SchedulerService interface {
	CheckAvailability(dt time.Time, events []models.CalendarEvent) error
	Book(ctx context.Context, dt time.Time) (string, error)
	SuggestSlots(events []models.CalendarEvent, weekday string) []string
}

// DefaultSchedulerService implements SchedulerService against a calendar
// client.
type DefaultSchedulerService struct {
	Calendar calendar.Client
	Summary  string // summary for events created by the booking flow
}
