package timephrase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday morning, minutes and seconds zeroed.
var testBase = time.Date(2025, time.January, 8, 10, 0, 0, 0, time.Local)

func newTestExtractor() *Extractor {
	return &Extractor{
		Resolver: NewResolver(),
		Now:      func() time.Time { return testBase },
	}
}

func TestCleanInput(t *testing.T) {
	assert.Equal(t, "book tomorrow at 2pm", CleanInput(`  “book” "tomorrow at 2pm”  `))
	assert.Equal(t, "plain text", CleanInput("plain text"))
}

func TestComposePhrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"day and time", "book a meeting next friday at 3pm", "next friday at 3pm"},
		{"casual day and time", "book a meeting tomorrow at 2pm", "tomorrow at 2pm"},
		{"time only", "can you do 4:30 pm", "4:30 pm"},
		{"day only", "how about tuesday", "tuesday"},
		{"neither passes through", "blah blah nonsense", "blah blah nonsense"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComposePhrase(tc.in))
		})
	}
}

func TestExtract_WeekdayWithExplicitTime(t *testing.T) {
	dt, err := newTestExtractor().Extract("book a meeting next friday at 3pm")
	require.NoError(t, err)

	assert.Equal(t, time.Friday, dt.Weekday())
	assert.Equal(t, 15, dt.Hour())
	assert.Equal(t, 0, dt.Minute())
	assert.True(t, dt.After(testBase))
}

func TestExtract_TomorrowAtTwo(t *testing.T) {
	dt, err := newTestExtractor().Extract("book a meeting tomorrow at 2pm")
	require.NoError(t, err)

	tomorrow := testBase.AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Year(), dt.Year())
	assert.Equal(t, tomorrow.Month(), dt.Month())
	assert.Equal(t, tomorrow.Day(), dt.Day())
	assert.Equal(t, 14, dt.Hour())
	assert.Equal(t, 0, dt.Minute())
}

func TestExtract_UnresolvableInput(t *testing.T) {
	_, err := newTestExtractor().Extract("blah blah nonsense")
	require.Error(t, err)

	var resolveErr *ResolveError
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, "blah blah nonsense", resolveErr.Phrase)
}

func TestExtract_CurlyQuotesStripped(t *testing.T) {
	dt, err := newTestExtractor().Extract("“book a meeting tomorrow at 2pm”")
	require.NoError(t, err)
	assert.Equal(t, 14, dt.Hour())
}
