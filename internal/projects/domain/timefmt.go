package domain

import "time"

// TimeLayout is the persisted timestamp format: RFC 3339 UTC with exactly
// millisecond precision, byte-identical to JavaScript's toISOString(). The
// web editor wrote every existing record this way, so round-trips through
// the store must reproduce it exactly.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in the persisted timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(TimeLayout)
}

// ParseTime reads a persisted timestamp back.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// NowISO is the current instant in the persisted timestamp format.
func NowISO() string {
	return FormatTime(time.Now())
}
