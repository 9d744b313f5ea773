package forecast

import (
	"fmt"
	"math"
	"time"
)

const (
	isoDateLayout = "2006-01-02"

	// Offsets past this are rejected instead of overflowing the calendar.
	maxDayOffset = 1 << 20
)

func validateDayOffset(dayOffset float64) error {
	switch {
	case math.IsNaN(dayOffset), math.IsInf(dayOffset, 0):
		return fmt.Errorf("%w: day offset must be a number, got %v", ErrInvalidArgument, dayOffset)
	case dayOffset < 0:
		return fmt.Errorf("%w: day offset must be >= 0, got %v", ErrInvalidArgument, dayOffset)
	case dayOffset > maxDayOffset:
		return fmt.Errorf("%w: day offset %v is too large", ErrInvalidArgument, dayOffset)
	}
	return nil
}

// targetDate returns noon on the calendar day dayOffset days after now, in
// now's location. Starting from noon keeps DST transitions from moving the
// result onto a neighbouring day. Fractional offsets are truncated.
func targetDate(now time.Time, dayOffset float64) time.Time {
	midday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	return midday.AddDate(0, 0, int(dayOffset))
}

func formatDate(t time.Time) string {
	return t.Format(isoDateLayout)
}
