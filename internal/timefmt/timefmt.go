// Package timefmt renders event timestamps in the fixed-offset textual form
// published in snapshots: YYYY-MM-DDTHH:MM:SS±HH:MM.
package timefmt

import (
	"strconv"
	"time"
)

const fieldLayout = "2006-01-02T15:04:05"

// stampLayouts accepts composed event timestamps with or without a seconds
// component.
var stampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

// NormalizeOffset rewrites a 5-character ±HHMM offset into the ±HH:MM form.
// Anything else, including already-normalized or malformed values, passes
// through unchanged; malformed offsets are deliberately not an error.
func NormalizeOffset(raw string) string {
	if len(raw) != 5 || (raw[0] != '+' && raw[0] != '-') {
		return raw
	}
	for _, c := range raw[1:] {
		if c < '0' || c > '9' {
			return raw
		}
	}
	return raw[:3] + ":" + raw[3:]
}

// Format renders the instant's calendar fields as observed in the given UTC
// offset (not the host zone) and appends the offset verbatim, for example
// "2024-01-01T20:00:00+08:00". An offset that does not parse as ±HH:MM falls
// back to UTC fields; the raw offset string is still appended.
func Format(t time.Time, offset string) string {
	loc, ok := offsetZone(offset)
	if !ok {
		loc = time.UTC
	}
	return t.In(loc).Format(fieldLayout) + offset
}

// offsetZone returns the fixed location implied by a ±HH:MM offset string.
func offsetZone(offset string) (*time.Location, bool) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return nil, false
	}
	h, errH := strconv.Atoi(offset[1:3])
	m, errM := strconv.Atoi(offset[4:6])
	if errH != nil || errM != nil {
		return nil, false
	}
	secs := (h*60 + m) * 60
	if offset[0] == '-' {
		secs = -secs
	}
	return time.FixedZone("UTC"+offset, secs), true
}

// ParseStamp parses a composed event timestamp. ok is false for empty or
// unparsable input; callers treat such stamps as incomparable rather than
// failing.
func ParseStamp(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Midnight truncates t to midnight in its own location. This is the lower
// bound of the retention window.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
