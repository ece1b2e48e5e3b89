package ics

import (
	"errors"
	"strings"
	"time"

	appLog "udonevent/internal/log"
	"udonevent/internal/model"
	"udonevent/internal/recurrence"
	"udonevent/internal/timefmt"
)

var errMissingAnchor = errors.New("recurring event has no start")

// Normalizer converts parsed ICS records into canonical events inside the
// retention window [today, maxday]. ICS feeds carry no tags or platforms, so
// those stay empty on every event.
type Normalizer struct {
	offset   string
	language string
	today    time.Time
	maxday   time.Time
}

func NewNormalizer(offset, language string, today, maxday time.Time) *Normalizer {
	return &Normalizer{
		offset:   offset,
		language: language,
		today:    today,
		maxday:   maxday,
	}
}

// Normalize expands rec into zero or more events.
//
// Recurring records emit one event per occurrence inside the window; the
// expansion itself enforces the window, so no further filter applies per
// occurrence. An unsupported frequency or an empty expansion drops the
// record. Single-occurrence records pass the retention-window filter or are
// dropped.
func (n *Normalizer) Normalize(rec Record) []model.Event {
	hasStart := !rec.Start.IsZero()

	// End times that never parsed mean "no end": the occurrence duration is
	// zero and the published end stays empty.
	var duration time.Duration
	if rec.HasEnd {
		duration = rec.End.Sub(rec.Start)
	}

	if rec.Frequency != "" {
		// A recurrence without a usable anchor cannot expand; rrule would
		// otherwise substitute the current instant for the zero Dtstart.
		if !hasStart {
			appLog.Error("ics record skipped", errMissingAnchor, "uid", rec.UID)
			return nil
		}
		dates, err := recurrence.Expand(rec.Start, n.today, n.maxday, recurrence.Frequency(rec.Frequency))
		if err != nil {
			appLog.Error("ics record skipped", err, "uid", rec.UID)
			return nil
		}
		if len(dates) == 0 {
			return nil
		}

		events := make([]model.Event, 0, len(dates))
		for _, date := range dates {
			end := ""
			if rec.HasEnd {
				end = timefmt.Format(date.Add(duration), n.offset)
			}
			events = append(events, n.event(rec, timefmt.Format(date, n.offset), end))
		}
		return events
	}

	switch {
	case !hasStart && !rec.HasEnd:
		return nil
	case rec.HasEnd && rec.End.Before(n.today):
		return nil
	case !rec.HasEnd && hasStart && rec.Start.Before(n.today):
		return nil
	case hasStart && rec.Start.After(n.maxday):
		return nil
	}

	start := ""
	if hasStart {
		start = timefmt.Format(rec.Start, n.offset)
	}
	end := ""
	if rec.HasEnd {
		end = timefmt.Format(rec.End, n.offset)
	}
	return []model.Event{n.event(rec, start, end)}
}

func (n *Normalizer) event(rec Record, start, end string) model.Event {
	return model.Event{
		ID:          rec.UID,
		Title:       rec.Summary,
		Description: strings.ReplaceAll(rec.Description, `\n`, "\n"),
		Start:       start,
		End:         end,
		Author:      rec.Author,
		Location:    rec.Location,
		Platform:    []string{},
		Tags:        []string{},
		Language:    n.language,
	}
}
