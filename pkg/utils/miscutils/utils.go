// Package miscutils holds small formatting helpers shared by the commands.
package miscutils

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as H:MM:SS, with a six-digit fraction when
// the duration is not a whole number of seconds. Durations of a day or more
// are prefixed with the day count, e.g. "1 day, 2:03:04".
//
// Precision is truncated to microseconds.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign, d = "-", -d
	}

	d = d.Truncate(time.Microsecond)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	micros := (d - seconds*time.Second) / time.Microsecond

	out := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	if micros != 0 {
		out += fmt.Sprintf(".%06d", micros)
	}

	switch days {
	case 0:
	case 1:
		out = "1 day, " + out
	default:
		out = fmt.Sprintf("%d days, %s", days, out)
	}
	return sign + out
}
