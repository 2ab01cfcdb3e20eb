package filter

import (
	"strings"
	"time"
)

// Layouts seen in imported records: Vietnamese day-first forms plus ISO.
var recordDateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
}

// ParseRecordDate parses a record timestamp in any of the accepted formats
// and truncates it to midnight. ISO datetimes are accepted by dropping the
// time-of-day component. The ok result is false for empty or unparseable
// input; this never panics.
func ParseRecordDate(s string) (time.Time, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return time.Time{}, false
	}

	// Datetime input: keep the date part only.
	if i := strings.IndexAny(cleaned, "T "); i >= 0 {
		cleaned = cleaned[:i]
	}

	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
