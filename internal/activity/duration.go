package activity

import (
	"fmt"
	"time"
)

// Duration returns the whole-minute interval between two HH:MM times on the
// same day. It returns 0 when either input is empty, when either input fails
// to parse, or when end is not strictly after start. Overnight-spanning
// activities are not supported; a non-positive interval is zero duration,
// never a negative number or an error, so legacy malformed records aggregate
// harmlessly.
func Duration(startTime, endTime string) int {
	if startTime == "" || endTime == "" {
		return 0
	}

	// Both times are parsed against the same arbitrary reference date.
	start, err := time.Parse(ClockLayout, startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ClockLayout, endTime)
	if err != nil {
		return 0
	}

	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// FormatMinutes renders a minute count as a short human string:
// "0m" below one minute, otherwise "{h}h {m}m" with zero components dropped.
//
//	90  -> "1h 30m"
//	45  -> "45m"
//	120 -> "2h"
func FormatMinutes(minutes int) string {
	if minutes < 1 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
