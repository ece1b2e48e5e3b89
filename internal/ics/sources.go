// Package ics ingests ICS calendar feeds: it loads the persisted source
// mapping, parses each payload, normalizes its events into the retention
// window and writes one snapshot per source.
package ics

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	appLog "udonevent/internal/log"
)

// SourceInfo describes one configured ICS feed as persisted in the source
// mapping file. Everything beyond Enable and ICS is copied verbatim into the
// source's snapshot.
type SourceInfo struct {
	Enable      bool   `json:"enable"`
	ICS         string `json:"ics"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	URL         string `json:"url"`
	SubmitURL   string `json:"submitUrl"`
}

// LoadSources reads the persisted source mapping keyed by source identifier.
// A missing file is normal (no sources configured); read or parse failures
// are logged and degrade to an empty mapping so the run still completes.
func LoadSources(path string) map[string]SourceInfo {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			appLog.Error("source mapping read failed", err, "path", path)
		}
		return map[string]SourceInfo{}
	}

	sources := map[string]SourceInfo{}
	if err := json.Unmarshal(data, &sources); err != nil {
		appLog.Error("source mapping parse failed", err, "path", path)
		return map[string]SourceInfo{}
	}
	return sources
}
