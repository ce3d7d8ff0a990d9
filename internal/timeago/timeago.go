// Package timeago renders an absolute timestamp as a coarse
// human-relative age ("5 minutes", "1 day").
package timeago

import (
	"fmt"
	"time"
)

const (
	minute = 60
	hour   = 60 * 60
	day    = 60 * 60 * 24
)

// Format renders the age of ts relative to now. The delta is floored to
// whole seconds and bucketed into seconds, minutes, hours or days; there
// is no larger tier. The unit is singular only when the count is exactly
// one, so a zero-second age reads "0 seconds". Assumes ts is not after now.
func Format(ts, now time.Time) string {
	seconds := int64(now.Sub(ts) / time.Second)

	switch {
	case seconds < minute:
		return pluralize(seconds, "second")
	case seconds < hour:
		return pluralize(seconds/minute, "minute")
	case seconds < day:
		return pluralize(seconds/hour, "hour")
	default:
		return pluralize(seconds/day, "day")
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
