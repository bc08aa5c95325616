// File: tailortalk/services/booking/executor.go
package booking

import (
	"context"
	"fmt"
	"time"

	"tailortalk/models"
	"tailortalk/utils"

	"go.uber.org/zap"
)

// confirmationLayout renders "Friday, January 10 at 02:00 PM".
const confirmationLayout = "Monday, January 02 at 03:04 PM"

// Book converts a validated start time into the fixed 30-minute window,
// creates the event on the calendar and returns a human-readable
// confirmation embedding the event link.
func (s *DefaultSchedulerService) Book(ctx context.Context, dt time.Time) (string, error) {
	window := models.NewTimeWindow(dt)

	link, err := s.Calendar.CreateEvent(ctx, window.Start, window.End, s.Summary)
	if err != nil {
		return "", NewBookingError(err.Error())
	}

	utils.GetLogger().Info("meeting booked",
		zap.Time("start", window.Start), zap.String("link", link))
	return fmt.Sprintf("✅ Meeting booked for %s! [View in Calendar](%s)",
		dt.Format(confirmationLayout), link), nil
}
