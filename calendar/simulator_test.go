package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.January, 8, 10, 0, 0, 0, time.Local)
}

func newTestSimulator(seed int64) *Simulator {
	return &Simulator{Seed: seed, Now: fixedNow}
}

func TestSimulator_Deterministic(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(42)

	first, err := sim.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	second, err := sim.ListUpcomingEvents(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed and clock must yield the same events")
}

func TestSimulator_EventsAreSortedFutureAndCapped(t *testing.T) {
	events, err := newTestSimulator(7).ListUpcomingEvents(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.LessOrEqual(t, len(events), 10)

	now := fixedNow()
	for i, ev := range events {
		assert.True(t, ev.Start.After(now), "event %d not in the future", i)
		assert.Equal(t, 30*time.Minute, ev.End.Sub(ev.Start))
		if i > 0 {
			assert.True(t, events[i-1].Start.Before(ev.Start), "events out of order at %d", i)
		}
	}
}

func TestSimulator_DifferentSeedsDiffer(t *testing.T) {
	a, err := newTestSimulator(1).ListUpcomingEvents(context.Background())
	require.NoError(t, err)
	b, err := newTestSimulator(2).ListUpcomingEvents(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSimulator_CreateEvent(t *testing.T) {
	sim := newTestSimulator(42)
	start := fixedNow().Add(24 * time.Hour)

	link, err := sim.CreateEvent(context.Background(), start, start.Add(30*time.Minute), "Meeting with TailorTalk")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://calendar.simulator.local/event/"))
}

func TestSimulator_CreateEventRejectsInvalidWindow(t *testing.T) {
	sim := newTestSimulator(42)
	start := fixedNow()

	_, err := sim.CreateEvent(context.Background(), start, start, "bad")
	assert.Error(t, err)
}
