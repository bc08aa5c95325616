// File: tailortalk/services/booking/availability.go
package booking

import (
	"time"

	"tailortalk/models"
	"tailortalk/utils"

	"go.uber.org/zap"
)

// minuteLayout truncates timestamps to minute precision for collision checks.
const minuteLayout = "2006-01-02T15:04"

// CheckAvailability reports a conflict when any existing event starts in the
// same minute as the candidate. This is deliberately a start-to-start,
// minute-granularity match rather than an interval overlap check: an event
// that merely covers the candidate minute is not detected.
func (s *DefaultSchedulerService) CheckAvailability(dt time.Time, events []models.CalendarEvent) error {
	candidate := dt.Format(minuteLayout)
	for _, event := range events {
		if event.Start.IsZero() {
			continue
		}
		if event.Start.Format(minuteLayout) == candidate {
			utils.GetLogger().Debug("candidate time collides with existing event",
				zap.String("candidate", candidate), zap.String("event", event.ID))
			return NewConflictError("an event already starts at " + candidate)
		}
	}
	return nil
}
