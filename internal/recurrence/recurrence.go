// Package recurrence projects recurring events into the concrete dates they
// produce inside a bounded window.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency identifies how often a recurring event repeats. The values are
// the RRULE FREQ tokens carried by ICS feeds.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Expand returns the dates a recurrence anchored at anchor produces inside
// [windowStart, windowEnd], both bounds inclusive, in chronological order.
// The anchor is the first candidate; candidates strictly before windowStart
// are discarded, and an anchor past windowEnd yields an empty result. Any
// frequency outside the four supported values is an error; callers skip the
// owning record in that case rather than falling back to a single occurrence.
// A zero anchor is an error too: rrule would substitute the current instant
// for it, and expansion must never read the wall clock.
func Expand(anchor, windowStart, windowEnd time.Time, freq Frequency) ([]time.Time, error) {
	if anchor.IsZero() {
		return nil, errors.New("recurrence: zero anchor")
	}
	var rf rrule.Frequency
	switch freq {
	case Daily:
		rf = rrule.DAILY
	case Weekly:
		rf = rrule.WEEKLY
	case Monthly:
		rf = rrule.MONTHLY
	case Yearly:
		rf = rrule.YEARLY
	default:
		return nil, fmt.Errorf("recurrence: unsupported frequency %q", string(freq))
	}

	r, err := rrule.NewRRule(rrule.ROption{Freq: rf, Dtstart: anchor})
	if err != nil {
		return nil, fmt.Errorf("recurrence: build rule: %w", err)
	}

	return r.Between(windowStart, windowEnd, true), nil
}
