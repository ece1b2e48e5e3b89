package timefmt

import "time"

// Stamp is an event timestamp assembled from a calendar day ("2006-01-02"),
// a wall-clock time ("15:04" or "15:04:05") and a fixed UTC offset. The
// components stay strings on purpose: malformed upstream values must flow
// through to the snapshot unchanged, and only comparison cares whether the
// composed text parses.
type Stamp struct {
	day    string
	clock  string
	offset string
}

// NewStamp builds a Stamp from its raw components. Missing components are
// legal and make the stamp empty.
func NewStamp(day, clock, offset string) Stamp {
	return Stamp{day: day, clock: clock, offset: offset}
}

// String returns day + "T" + clock + offset, or "" when day or clock is
// missing. This is the exact textual form published in snapshots.
func (s Stamp) String() string {
	if s.day == "" || s.clock == "" {
		return ""
	}
	return s.day + "T" + s.clock + s.offset
}

// Instant parses the composed stamp into an absolute time. ok is false for
// empty or unparsable stamps.
func (s Stamp) Instant() (time.Time, bool) {
	return ParseStamp(s.String())
}
