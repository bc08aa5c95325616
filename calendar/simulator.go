package calendar

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"tailortalk/models"

	"github.com/google/uuid"
)

// Simulator is a deterministic stand-in for the real calendar backend. Given
// the same seed and the same day it always produces the same upcoming events,
// which makes conversation runs reproducible without any Google credentials.
type Simulator struct {
	Seed int64
	Now  func() time.Time
}

// NewSimulator returns a simulator seeded with the given value.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{Seed: seed, Now: time.Now}
}

// ListUpcomingEvents fabricates up to maxUpcomingEvents busy slots over the
// next week, hour- or half-hour-aligned, sorted ascending by start time.
func (s *Simulator) ListUpcomingEvents(_ context.Context) ([]models.CalendarEvent, error) {
	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rng := rand.New(rand.NewSource(s.Seed))
	seen := make(map[time.Time]bool)
	var events []models.CalendarEvent

	// Slots land tomorrow through a week out, during business hours, on the
	// hour or half past.
	for i := 0; len(events) < maxUpcomingEvents && i < maxUpcomingEvents*3; i++ {
		day := 1 + rng.Intn(7)
		hour := 9 + rng.Intn(8)
		minute := 30 * rng.Intn(2)
		start := midnight.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		if seen[start] {
			continue
		}
		seen[start] = true
		events = append(events, models.CalendarEvent{
			ID:      fmt.Sprintf("sim-%d-%d", s.Seed, start.Unix()),
			Summary: "Busy",
			Start:   start,
			End:     start.Add(models.MeetingDuration),
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events, nil
}

// CreateEvent pretends to book the slot and returns a fake event link.
func (s *Simulator) CreateEvent(_ context.Context, start, end time.Time, summary string) (string, error) {
	if !end.After(start) {
		return "", fmt.Errorf("invalid event window: end %s not after start %s", end, start)
	}
	return fmt.Sprintf("https://calendar.simulator.local/event/%s", uuid.New().String()), nil
}
