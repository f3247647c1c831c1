package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time normalized to HH:MM:SS, 24-hour.
// Zero-padded values compare correctly as strings, which keeps the
// half-open interval test a plain < / > comparison both here and in SQL.
type TimeOfDay string

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t.Format("15:04:05")), nil
		}
	}
	return "", fmt.Errorf("%w: invalid time %q, expected HH:MM or HH:MM:SS", ErrValidation, s)
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format("15:04:05"))
}

func (t TimeOfDay) String() string { return string(t) }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// Overlaps reports whether [t, end) intersects [otherStart, otherEnd).
// Adjacent intervals (end == otherStart) do not overlap.
func Overlaps(start, end, otherStart, otherEnd TimeOfDay) bool {
	return start < otherEnd && end > otherStart
}
