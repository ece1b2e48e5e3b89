// rlvrc regenerates the JSON snapshot for the RLVRC v2 event-listing feed.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"udonevent/internal/config"
	"udonevent/internal/fetch"
	appLog "udonevent/internal/log"
	"udonevent/internal/rlvrc"
)

func main() {
	url := flag.String("url", "", "event-listing API URL (required)")
	proxy := flag.String("proxy", "", "HTTP proxy URL for upstream fetches")
	flag.Parse()

	if *url == "" {
		appLog.Error("missing required flags", errors.New("--url is required"))
		os.Exit(1)
	}

	cfg := config.Load(config.DefaultPath)

	client, err := fetch.New(*proxy, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	if err != nil {
		appLog.Error("invalid proxy", err)
		os.Exit(1)
	}

	opts := rlvrc.Options{
		Now:        time.Now(),
		Client:     client,
		URL:        *url,
		TagsURL:    cfg.TagsURL,
		InfoPath:   cfg.ListingInfo,
		OutputDir:  cfg.OutputDir,
		OutputName: cfg.ListingOutput,
	}
	if err := rlvrc.Run(context.Background(), opts); err != nil {
		appLog.Error("listing run failed", err)
		os.Exit(1)
	}
}
