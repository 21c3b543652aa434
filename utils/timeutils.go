package utils

import (
	"fmt"
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// MinutesString formats the minutes part of d as "05 min". Whole hours are
// not included.
func MinutesString(d time.Duration) string {
	interval := int(d / time.Second)
	minutes := (interval / 60) % 60
	return fmt.Sprintf("%02d min", minutes)
}
