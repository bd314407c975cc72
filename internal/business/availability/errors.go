package availability

import (
	"fmt"

	"github.com/whenmeet/availability-backend/internal/calendar"
)

// InvalidDateRangeError reports a day outside 1..lastDayOfMonth for the
// requested month. The merger fails fast instead of clamping.
type InvalidDateRangeError struct {
	Day   int
	Month calendar.Month
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("day %d outside %v %d", e.Day, e.Month.Month, e.Month.Year)
}
