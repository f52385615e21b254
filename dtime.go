package mtschema

import (
	"fmt"
	"strings"
	"time"
)

// Accepted date/time layouts, tried in order. Field data arrives from many
// acquisition systems; offsets are optional and a bare date is a valid
// instant at UTC midnight.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601-like timestamp and normalizes it to UTC.
func ParseDateTime(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("mtschema: unrecognized date/time %q", s)
}

// ParseDate parses a calendar date (any accepted timestamp form is truncated
// to its UTC date).
func ParseDate(s string) (time.Time, error) {
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(24 * time.Hour), nil
}

// FormatDateTime renders the canonical UTC form (RFC3339, trailing zeros
// trimmed).
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatDate renders the canonical calendar-date form.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
