package models

import "time"

// TimestampLayout is the storage format of every created_at / updated_at /
// deleted_at column: UTC with millisecond precision and a literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// NowTimestamp returns the current wall-clock time in [TimestampLayout].
func NowTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored timestamp string. RFC 3339 parsing accepts
// both the millisecond storage layout and timestamps written with other
// offsets or precisions.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
