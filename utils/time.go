package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesSinceMidnight parses an HH:MM clock value into minutes since
// midnight, for ordering comparisons between slot start and end times.
func MinutesSinceMidnight(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", clock, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", clock, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", clock)
	}
	return hours*60 + minutes, nil
}

// SlotStart combines a slot's date (YYYY-MM-DD) and start time (HH:MM) in
// the server's local zone, for the reminder window check.
func SlotStart(date, start string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+start, time.Local)
}
