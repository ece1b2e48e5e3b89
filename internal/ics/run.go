package ics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"udonevent/internal/fetch"
	appLog "udonevent/internal/log"
	"udonevent/internal/model"
	"udonevent/internal/snapshot"
	"udonevent/internal/timefmt"
)

// Options configures one multi-source ICS run.
type Options struct {
	// Now is the wall-clock reference the retention window derives from.
	// Injected so runs are reproducible under test.
	Now time.Time

	Client      *fetch.Client
	SourcesPath string
	OutputDir   string
	HorizonDays int
}

// Run processes every enabled source in sorted key order and writes one
// snapshot per source, named "ics_<key>.json". The first fetch or parse
// failure aborts the remaining sources: a partial snapshot set is preferable
// to publishing a source built from a broken payload.
func Run(ctx context.Context, opts Options) error {
	today := timefmt.Midnight(opts.Now)
	maxday := today.AddDate(0, 0, opts.HorizonDays)

	sources := LoadSources(opts.SourcesPath)
	keys := make([]string, 0, len(sources))
	for k := range sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		info := sources[key]
		if !info.Enable || info.ICS == "" {
			continue
		}
		if err := runSource(ctx, key, info, opts, today, maxday); err != nil {
			return fmt.Errorf("ics source %q: %w", key, err)
		}
	}
	return nil
}

func runSource(ctx context.Context, key string, info SourceInfo, opts Options, today, maxday time.Time) error {
	body, err := opts.Client.Fetch(ctx, info.ICS)
	if err != nil {
		return err
	}

	cal, err := Parse(body)
	if err != nil {
		return err
	}

	norm := NewNormalizer(cal.Offset, info.Language, today, maxday)
	events := []model.Event{}
	for _, rec := range cal.Records {
		events = append(events, norm.Normalize(rec)...)
	}
	model.SortByStart(events)

	doc := model.Document{
		Name:        info.Name,
		Description: info.Description,
		Language:    info.Language,
		URL:         info.URL,
		SubmitURL:   info.SubmitURL,
		Events:      events,
		Platform:    map[string]int{},
		Tags:        map[string]int{},
		I18n:        model.Translations{},
	}

	appLog.Info("ics source processed",
		"key", key,
		"url", fetch.RedactURL(info.ICS),
		"records", len(cal.Records),
		"events", len(events),
	)
	return snapshot.Write(opts.OutputDir, "ics_"+key+".json", doc)
}
