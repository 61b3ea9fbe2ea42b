package util

import (
	"strings"
	"time"
)

// Wire timestamp layouts seen in flight data feeds.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Ordered longest-first so YYYY is rewritten before YY.
var placeholders = []struct{ from, to string }{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// FormatTimeTpl renders a feed timestamp using a template with placeholders.
//
// Supported placeholders:
// - YYYY: 4-digit year
// - YY: 2-digit year
// - MM: 2-digit month (01-12)
// - DD: 2-digit day (01-31)
// - hh: 2-digit hour (00-23)
// - mm: 2-digit minute (00-59)
// - ss: 2-digit second (00-59)
//
// Feed timestamps are not trusted to be well formed: empty or unparseable
// input returns fallback.
//
// Example:
//
//	FormatTimeTpl("2026-03-01T10:30:00+00:00", "YYYY.MM.DD hh:mm", "Unknown") // "2026.03.01 10:30"
//	FormatTimeTpl("soon", "YYYY.MM.DD", "Unknown")                            // "Unknown"
func FormatTimeTpl(ts, tpl, fallback string) string {
	t, ok := ParseWireTime(ts)
	if !ok {
		return fallback
	}

	goTpl := tpl
	for _, p := range placeholders {
		goTpl = strings.ReplaceAll(goTpl, p.from, p.to)
	}
	return t.Format(goTpl)
}

// ParseWireTime tries the known feed layouts in order.
func ParseWireTime(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
