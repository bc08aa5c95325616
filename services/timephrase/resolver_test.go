package timephrase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BareTimeInFutureStaysToday(t *testing.T) {
	base := time.Date(2025, time.January, 8, 10, 0, 0, 0, time.Local)

	dt, ok := NewResolver().Resolve("4:30 pm", base)
	require.True(t, ok)

	assert.Equal(t, base.Day(), dt.Day())
	assert.Equal(t, 16, dt.Hour())
	assert.Equal(t, 30, dt.Minute())
}

func TestResolve_BareTimeInPastRollsForward(t *testing.T) {
	base := time.Date(2025, time.January, 8, 15, 0, 0, 0, time.Local)

	dt, ok := NewResolver().Resolve("9am", base)
	require.True(t, ok)

	assert.True(t, dt.After(base), "future bias must never resolve into the past")
	assert.Equal(t, base.Day()+1, dt.Day())
	assert.Equal(t, 9, dt.Hour())
}

func TestResolve_Today(t *testing.T) {
	base := time.Date(2025, time.January, 8, 10, 0, 0, 0, time.Local)

	dt, ok := NewResolver().Resolve("today", base)
	require.True(t, ok)
	assert.Equal(t, base.Day(), dt.Day())
	assert.False(t, dt.Before(base))
}

func TestResolve_NoMatch(t *testing.T) {
	_, ok := NewResolver().Resolve("blah blah nonsense", time.Now())
	assert.False(t, ok)
}
