package rlvrc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"udonevent/internal/fetch"
	"udonevent/internal/i18n"
	appLog "udonevent/internal/log"
	"udonevent/internal/model"
	"udonevent/internal/snapshot"
	"udonevent/internal/timefmt"
)

// Options configures one listing run.
type Options struct {
	// Now is the wall-clock reference the retention window derives from.
	Now time.Time

	Client     *fetch.Client
	URL        string
	TagsURL    string
	InfoPath   string
	OutputDir  string
	OutputName string
}

// Run fetches the listing feed, normalizes every partition, and merges the
// result onto the persisted snapshot shell. Fetch or decode failures of the
// primary payload are fatal for the run; the shell read is not.
func Run(ctx context.Context, opts Options) error {
	today := timefmt.Midnight(opts.Now)

	table, err := i18n.FetchTable(ctx, opts.Client, opts.TagsURL)
	if err != nil {
		return err
	}

	body, err := opts.Client.Fetch(ctx, opts.URL)
	if err != nil {
		return fmt.Errorf("rlvrc: fetch listing: %w", err)
	}
	if len(body) == 0 {
		return errors.New("rlvrc: empty listing payload")
	}

	var listing Body
	if err := json.Unmarshal(body, &listing); err != nil {
		return fmt.Errorf("rlvrc: decode listing: %w", err)
	}

	localizer := i18n.NewLocalizer(table, Language)
	norm := NewNormalizer(today, localizer)
	for _, item := range listing.Data.ShortTerm {
		norm.Add(item)
	}
	for _, item := range listing.Data.LongTerm {
		norm.Add(item)
	}
	for _, item := range listing.Data.UnknownStartTime {
		norm.Add(item)
	}

	events := norm.Events()
	model.SortByStart(events)

	doc := snapshot.LoadShell(opts.InfoPath)
	doc.ImageCount = 0
	doc.Description = listing.Inform
	doc.Events = events
	doc.Platform = norm.PlatformCounts()
	doc.Tags = norm.TagCounts()
	doc.I18n = localizer.Added()

	appLog.Info("listing processed",
		"url", fetch.RedactURL(opts.URL),
		"events", len(events),
		"tags", len(doc.Tags),
	)
	return snapshot.Write(opts.OutputDir, opts.OutputName, doc)
}
