package rlvrc

import (
	"slices"
	"time"

	"udonevent/internal/i18n"
	"udonevent/internal/model"
	"udonevent/internal/timefmt"
)

// Offset is the fixed UTC offset the listing API reports all times in.
const Offset = "+08:00"

// Language is the language code of the listing feed.
const Language = "zh-CN"

// linkPlaceholder is the zh-CN group name used when an event has a join
// target but no explicit group name ("click to view").
const linkPlaceholder = "点击查看"

// Normalizer converts raw listing entries into canonical events. It keeps
// per-run tag and platform occurrence counts over everything it retains; the
// counters reset with each new Normalizer.
type Normalizer struct {
	today     time.Time
	localizer *i18n.Localizer

	events   []model.Event
	tags     map[string]int
	platform map[string]int
}

func NewNormalizer(today time.Time, localizer *i18n.Localizer) *Normalizer {
	return &Normalizer{
		today:     today,
		localizer: localizer,
		events:    []model.Event{},
		tags:      map[string]int{},
		platform:  map[string]int{},
	}
}

// Add normalizes one entry and retains it unless the retention window drops
// it. The window here has a lower bound only: long-running listings may end
// arbitrarily far in the future. Stamps that do not parse never cause a drop.
// Counts update only for retained entries.
func (n *Normalizer) Add(item EventItem) {
	start := timefmt.NewStamp(item.StartDay, item.StartTime, Offset)
	end := timefmt.NewStamp(item.EndDay, item.EndTime, Offset)
	startStr := start.String()
	endStr := end.String()

	if startStr == "" && endStr == "" {
		return
	}
	if t, ok := end.Instant(); ok && t.Before(n.today) {
		return
	}
	if endStr == "" {
		if t, ok := start.Instant(); ok && t.Before(n.today) {
			return
		}
	}

	// Tags deduplicate per event in first-seen order; the per-run count sees
	// each tag at most once per event.
	tags := []string{}
	for _, raw := range item.Tags {
		tag := n.localizer.Resolve(raw)
		if slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
		n.tags[tag]++
	}

	// Every listing entry is a PC event.
	n.platform["PC"]++

	link := item.VRCGroupID
	if link == "" {
		link = item.JoinLink
	}
	name := item.VRCGroupName
	if name == "" && link != "" {
		name = linkPlaceholder
	}

	instanceType := ""
	if item.IsPublic {
		instanceType = "Public"
	}

	n.events = append(n.events, model.Event{
		ID:           item.UUID,
		Title:        item.Title,
		Description:  item.Description,
		Start:        startStr,
		End:          endStr,
		Author:       item.Uploader,
		Location:     item.Location,
		InstanceType: instanceType,
		Platform:     []string{"PC"},
		Tags:         tags,
		Language:     Language,
		Group:        &model.Group{Name: name, ID: link},
	})
}

// Events returns the retained events in insertion order.
func (n *Normalizer) Events() []model.Event {
	return n.events
}

// TagCounts returns the per-run canonical tag occurrence counts.
func (n *Normalizer) TagCounts() map[string]int {
	return n.tags
}

// PlatformCounts returns the per-run platform occurrence counts.
func (n *Normalizer) PlatformCounts() map[string]int {
	return n.platform
}
