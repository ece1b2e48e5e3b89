// Package config loads the shared application configuration for the feed
// commands from a YAML file. A missing or broken file is never fatal: the
// defaults below describe a working checkout layout, and a batch run should
// still produce snapshots from them.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	appLog "udonevent/internal/log"
)

// DefaultPath is where both commands look for their configuration.
const DefaultPath = "udonevent.yaml"

// Config is the top-level application configuration.
type Config struct {
	// OutputDir is the directory snapshot files are written into.
	OutputDir string `yaml:"output_dir"`

	// HorizonDays is the number of future days covered by the retention
	// window ("today .. today+HorizonDays").
	HorizonDays int `yaml:"horizon_days"`

	// HTTPTimeoutSeconds bounds every upstream fetch.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`

	// ICSSources is the path of the persisted ICS source mapping.
	ICSSources string `yaml:"ics_sources"`

	// ListingInfo is the path of the persisted snapshot shell carrying the
	// static metadata of the event-listing source.
	ListingInfo string `yaml:"listing_info"`

	// ListingOutput is the snapshot file name for the event-listing source.
	ListingOutput string `yaml:"listing_output"`

	// TagsURL is the remote canonical-tag translation table.
	TagsURL string `yaml:"tags_url"`
}

// DefaultConfig returns the in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:          "pages",
		HorizonDays:        30,
		HTTPTimeoutSeconds: 30,
		ICSSources:         "ics/infos.json",
		ListingInfo:        "rlvrcv2/info.json",
		ListingOutput:      "rlvrcv2.json",
		TagsURL:            "https://github.com/UdonEvent/udonevent.github.io/raw/refs/heads/master/i18n/tags.json",
	}
}

// Normalize fills zero values with defaults so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = def.HorizonDays
	}
	if c.HTTPTimeoutSeconds <= 0 {
		c.HTTPTimeoutSeconds = def.HTTPTimeoutSeconds
	}
	if c.ICSSources == "" {
		c.ICSSources = def.ICSSources
	}
	if c.ListingInfo == "" {
		c.ListingInfo = def.ListingInfo
	}
	if c.ListingOutput == "" {
		c.ListingOutput = def.ListingOutput
	}
	if c.TagsURL == "" {
		c.TagsURL = def.TagsURL
	}
}

// Load reads the configuration from path. Read or parse failures degrade to
// the defaults with a logged warning; only a genuinely absent file stays
// silent.
func Load(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			appLog.Error("config read failed, using defaults", err, "path", path)
		}
		return DefaultConfig()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		appLog.Error("config parse failed, using defaults", err, "path", path)
		return DefaultConfig()
	}
	cfg.Normalize()
	return &cfg
}
