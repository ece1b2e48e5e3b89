package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "udonevent/internal/log"
	"udonevent/internal/timefmt"
)

// defaultOffset applies when a payload declares no usable VTIMEZONE offset.
const defaultOffset = "+08:00"

// Record is one VEVENT lifted out of an ICS payload, reduced to the fields
// the normalizer consumes. Recurrence stays a raw FREQ token here; expansion
// happens during normalization.
type Record struct {
	UID         string
	Summary     string
	Description string
	Author      string
	Location    string

	Start  time.Time
	End    time.Time
	HasEnd bool

	// Frequency is the RRULE FREQ token, empty for non-recurring events.
	Frequency string
}

// Calendar is a parsed ICS payload: its event records plus the feed's UTC
// offset, normalized to ±HH:MM form.
type Calendar struct {
	Offset  string
	Records []Record
}

// Parse converts a raw ICS payload into a Calendar. Events that cannot be
// read are logged and skipped; an unparsable payload is an error the caller
// treats as fatal for the source.
func Parse(body []byte) (Calendar, error) {
	if len(body) == 0 {
		return Calendar{}, errors.New("ics: empty payload")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return Calendar{}, fmt.Errorf("ics: parse calendar: %w", err)
	}

	offset := offsetFrom(cal)
	if offset == "" {
		offset = defaultOffset
	}

	out := Calendar{Offset: timefmt.NormalizeOffset(offset)}
	for _, ve := range cal.Events() {
		rec, perr := parseEvent(ve)
		if perr != nil {
			appLog.Error("ics event skipped", perr)
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// offsetFrom digs the first TZOFFSETFROM value out of the calendar's
// VTIMEZONE components, mirroring the first timezone's first standard or
// daylight block in the feed.
func offsetFrom(cal *ical.Calendar) string {
	for _, comp := range cal.Components {
		if _, ok := comp.(*ical.VEvent); ok {
			continue
		}
		for _, sub := range comp.SubComponents() {
			for _, p := range sub.UnknownPropertiesIANAProperties() {
				if p.IANAToken == "TZOFFSETFROM" && p.Value != "" {
					return p.Value
				}
			}
		}
	}
	return ""
}

func parseEvent(ve *ical.VEvent) (Record, error) {
	var rec Record

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return rec, errors.New("missing UID")
	}
	rec.UID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		rec.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		rec.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		rec.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		if cn, ok := p.ICalParameters["CN"]; ok && len(cn) > 0 {
			rec.Author = cn[0]
		}
	}

	if start, err := ve.GetStartAt(); err == nil {
		rec.Start = start
	}
	if end, err := ve.GetEndAt(); err == nil && !end.IsZero() {
		rec.End = end
		rec.HasEnd = true
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		rec.Frequency = rruleFrequency(p.Value)
	}

	return rec, nil
}

// rruleFrequency extracts the FREQ token from a raw RRULE value such as
// "FREQ=WEEKLY;INTERVAL=1".
func rruleFrequency(raw string) string {
	for _, part := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), "FREQ") {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
