// icsfeed regenerates the per-source JSON snapshots for every enabled ICS
// calendar feed in the persisted source mapping.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"udonevent/internal/config"
	"udonevent/internal/fetch"
	"udonevent/internal/ics"
	appLog "udonevent/internal/log"
)

func main() {
	proxy := flag.String("proxy", "", "HTTP proxy URL for upstream fetches")
	flag.Parse()

	cfg := config.Load(config.DefaultPath)

	client, err := fetch.New(*proxy, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	if err != nil {
		appLog.Error("invalid proxy", err)
		os.Exit(1)
	}

	opts := ics.Options{
		Now:         time.Now(),
		Client:      client,
		SourcesPath: cfg.ICSSources,
		OutputDir:   cfg.OutputDir,
		HorizonDays: cfg.HorizonDays,
	}
	if err := ics.Run(context.Background(), opts); err != nil {
		appLog.Error("ics run failed", err)
		os.Exit(1)
	}
}
