package utils

import "time"

const TimestampLayout = "2006-01-02T15:04:05.000Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func Now() string {
	return FormatTimestamp(time.Now())
}

// NextTimestamp returns the current time, or one millisecond past previous
// when the clock has not moved beyond it.
func NextTimestamp(previous string) string {
	now := time.Now().UTC().Truncate(time.Millisecond)
	prev, err := time.Parse(TimestampLayout, previous)
	if err != nil {
		prev, err = time.Parse(time.RFC3339Nano, previous)
	}
	if err == nil && !now.After(prev) {
		now = prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return FormatTimestamp(now)
}
