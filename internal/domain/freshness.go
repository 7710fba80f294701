package domain

import "time"

// MaxAgeUntilHour returns the whole seconds from now until the next
// occurrence of hour:00 UTC, plus an optional safety margin. Data categories
// publish once a day at a fixed UTC hour, so responses stay cacheable
// exactly until the next expected refresh.
func MaxAgeUntilHour(hour int, margin time.Duration) int {
	now := clock.Now().UTC()
	expire := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if now.Hour() >= hour {
		expire = expire.Add(24 * time.Hour)
	}
	return int((expire.Sub(now) + margin) / time.Second)
}

// MaxAgeSince returns the whole seconds left in a fixed window that opened
// at the given instant. Used for the hourly news feed, where freshness
// counts from the file's own write time.
func MaxAgeSince(written time.Time, window time.Duration) int {
	return int(written.Add(window).Sub(clock.Now()) / time.Second)
}
