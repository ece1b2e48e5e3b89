// Package model holds the canonical event schema shared by every source and
// the per-source snapshot document built around it. Field names and JSON keys
// are part of the published snapshot format and must not change.
package model

// Group identifies the join target of an event: a named group or a bare link.
type Group struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Event is one concrete event occurrence as published in a snapshot. Start
// and End are fixed-offset timestamps ("2024-01-01T20:00:00+08:00") or empty
// when unknown.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Author       string   `json:"author"`
	Location     string   `json:"location"`
	InstanceType string   `json:"instance_type"`
	Platform     []string `json:"platform"`
	Tags         []string `json:"tags"`
	Language     string   `json:"language"`
	Require      string   `json:"require"`
	Join         string   `json:"join"`
	Note         string   `json:"note"`
	Group        *Group   `json:"group,omitempty"`
}

// Translations maps a canonical tag key to its localized values keyed by
// language code.
type Translations map[string]map[string]string

// Document is the snapshot written for one source per run.
type Document struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Language    string         `json:"language"`
	URL         string         `json:"url"`
	SubmitURL   string         `json:"submitUrl"`
	Events      []Event        `json:"events"`
	ImageCount  int            `json:"imageCount"`
	Platform    map[string]int `json:"platform"`
	Tags        map[string]int `json:"tags"`
	I18n        Translations   `json:"i18n"`
}

// NewDocument returns a Document whose collections are initialized, so empty
// runs still serialize as [] and {} rather than null.
func NewDocument() Document {
	return Document{
		Events:   []Event{},
		Platform: map[string]int{},
		Tags:     map[string]int{},
		I18n:     Translations{},
	}
}
