// File: tailortalk/services/booking/slots.go
package booking

import (
	"strings"
	"time"

	"tailortalk/models"
)

// maxSuggestions caps how many free slots one reply offers.
const maxSuggestions = 3

// slotLayout renders "Friday at 03:00 PM".
const slotLayout = "Monday at 03:04 PM"

// SuggestSlots formats up to three upcoming slots in input order, optionally
// restricted to a weekday name (lowercase, e.g. "friday"). Events without a
// resolvable start time are skipped.
func (s *DefaultSchedulerService) SuggestSlots(events []models.CalendarEvent, weekday string) []string {
	var suggestions []string
	for _, event := range events {
		if event.Start.IsZero() {
			continue
		}
		if weekday != "" && strings.ToLower(event.Start.Weekday().String()) != weekday {
			continue
		}
		suggestions = append(suggestions, event.Start.Format(slotLayout))
		if len(suggestions) >= maxSuggestions {
			break
		}
	}
	return suggestions
}

// WeekdayFilter returns the first literal weekday name mentioned in the
// utterance, or "" when none is present.
func WeekdayFilter(text string) string {
	lower := strings.ToLower(text)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if strings.Contains(lower, name) {
			return name
		}
	}
	return ""
}
