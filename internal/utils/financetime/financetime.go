// Package financetime converts between the nanosecond epoch timestamps the
// storage layer uses and UTC calendar dates. All calendar math is pinned to
// UTC so a transaction maps to the same day and month regardless of where
// the caller runs.
package financetime

import (
	"fmt"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
)

const (
	dayNanos         = int64(24 * time.Hour)
	millisecondNanos = int64(time.Millisecond)
)

// ToCalendarDate returns the UTC calendar date of the given timestamp.
func ToCalendarDate(ns int64) (year int, month time.Month, day int) {
	return time.Unix(0, ns).UTC().Date()
}

// FromCalendarDate returns the timestamp of UTC midnight on the given date.
func FromCalendarDate(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixNano()
}

// StartOfDayNanos truncates a timestamp to 00:00:00.000 UTC of its day.
func StartOfDayNanos(ns int64) int64 {
	y, m, d := ToCalendarDate(ns)
	return FromCalendarDate(y, m, d)
}

// EndOfDayNanos returns 23:59:59.999 UTC of the timestamp's day. The bound is
// millisecond-resolution, matching the inclusive end-of-day filter semantics.
func EndOfDayNanos(ns int64) int64 {
	return StartOfDayNanos(ns) + dayNanos - millisecondNanos
}

// MonthOf returns the UTC calendar year and month of the timestamp.
func MonthOf(ns int64) (year int, month time.Month) {
	y, m, _ := ToCalendarDate(ns)
	return y, m
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) as UTC midnight.
func ParseDate(s string) (int64, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", apperrors.ErrInvalidDate, s)
	}
	return t.UnixNano(), nil
}

// FormatDate renders the timestamp's UTC day as an ISO calendar date.
func FormatDate(ns int64) string {
	return time.Unix(0, ns).UTC().Format(time.DateOnly)
}

// FormatDateLabel renders the timestamp's UTC day in the report display form,
// e.g. "Jan 15, 2024".
func FormatDateLabel(ns int64) string {
	return time.Unix(0, ns).UTC().Format("Jan 2, 2006")
}
