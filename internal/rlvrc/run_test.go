package rlvrc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"udonevent/internal/fetch"
	"udonevent/internal/model"
)

const listingFixture = `{
  "inform": "upstream notice",
  "data": {
    "shortTerm": [
      {
        "id": 1,
        "uuid": "uuid-short",
        "title": "Dance night",
        "description": "short-term event",
        "tags": ["舞蹈"],
        "start_day": "2030-01-05",
        "start_time": "20:00",
        "is_public": true,
        "uploader": "organizer",
        "vrc_group_id": "grp_1"
      }
    ],
    "longTerm": [
      {
        "id": 2,
        "uuid": "uuid-long",
        "title": "Standing party",
        "description": "long-term event",
        "tags": ["聚会"],
        "start_day": "2030-01-01",
        "start_time": "10:00",
        "is_public": false,
        "uploader": "organizer",
        "join_link": "https://example.com/join"
      }
    ],
    "unknownStartTime": [
      {
        "id": 3,
        "uuid": "uuid-unknown",
        "title": "Sometime",
        "description": "no schedule yet",
        "tags": []
      }
    ]
  }
}`

func listingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tags.json":
			w.Write([]byte(`{"Party":{"zh-CN":"派对"},"Dance":{"zh-CN":"舞蹈"}}`))
		case "/events":
			w.Write([]byte(listingFixture))
		case "/empty":
			// no body
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestRunMergesOntoShell(t *testing.T) {
	t.Parallel()

	srv := listingServer(t)
	defer srv.Close()

	dir := t.TempDir()
	shellPath := filepath.Join(dir, "info.json")
	shell := `{
  "name": "RLVRC",
  "language": "zh-CN",
  "url": "https://example.com",
  "submitUrl": "https://example.com/submit",
  "description": "stale description",
  "imageCount": 7
}`
	if err := os.WriteFile(shellPath, []byte(shell), 0o644); err != nil {
		t.Fatalf("write shell: %v", err)
	}

	client, err := fetch.New("", 5*time.Second)
	if err != nil {
		t.Fatalf("fetch.New: %v", err)
	}

	outDir := filepath.Join(dir, "pages")
	opts := Options{
		Now:        time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Client:     client,
		URL:        srv.URL + "/events",
		TagsURL:    srv.URL + "/tags.json",
		InfoPath:   shellPath,
		OutputDir:  outDir,
		OutputName: "rlvrcv2.json",
	}
	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "rlvrcv2.json"))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}

	// Shell metadata survives; the run owns everything else.
	if doc.Name != "RLVRC" || doc.URL != "https://example.com" {
		t.Fatalf("shell metadata lost: %+v", doc)
	}
	if doc.Description != "upstream notice" {
		t.Fatalf("description = %q, want the listing's inform text", doc.Description)
	}
	if doc.ImageCount != 0 {
		t.Fatalf("imageCount = %d, want reset to 0", doc.ImageCount)
	}

	// The dateless unknownStartTime entry drops; the two dated ones sort
	// chronologically: long-term (Jan 1) before short-term (Jan 5).
	if len(doc.Events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(doc.Events), doc.Events)
	}
	if doc.Events[0].ID != "uuid-long" || doc.Events[1].ID != "uuid-short" {
		t.Fatalf("order = %s, %s", doc.Events[0].ID, doc.Events[1].ID)
	}

	if doc.Tags["Dance"] != 1 || doc.Tags["Party"] != 1 {
		t.Fatalf("tag counts = %v", doc.Tags)
	}
	if doc.Platform["PC"] != 2 {
		t.Fatalf("platform counts = %v", doc.Platform)
	}

	// 舞蹈 resolved via the table, 聚会 via the synonym map; both land in the
	// localization subset with their zh-CN table values.
	if doc.I18n["Dance"]["zh-CN"] != "舞蹈" || doc.I18n["Party"]["zh-CN"] != "派对" {
		t.Fatalf("i18n subset = %v", doc.I18n)
	}
}

func TestRunMissingShellStillWrites(t *testing.T) {
	t.Parallel()

	srv := listingServer(t)
	defer srv.Close()

	dir := t.TempDir()
	client, err := fetch.New("", 5*time.Second)
	if err != nil {
		t.Fatalf("fetch.New: %v", err)
	}

	opts := Options{
		Now:        time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Client:     client,
		URL:        srv.URL + "/events",
		TagsURL:    srv.URL + "/tags.json",
		InfoPath:   filepath.Join(dir, "missing.json"),
		OutputDir:  filepath.Join(dir, "pages"),
		OutputName: "rlvrcv2.json",
	}
	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "pages", "rlvrcv2.json"))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if doc.Name != "" || len(doc.Events) != 2 {
		t.Fatalf("unexpected doc: %+v", doc)
	}
}

func TestRunEmptyPayloadFatal(t *testing.T) {
	t.Parallel()

	srv := listingServer(t)
	defer srv.Close()

	dir := t.TempDir()
	client, err := fetch.New("", 5*time.Second)
	if err != nil {
		t.Fatalf("fetch.New: %v", err)
	}

	opts := Options{
		Now:        time.Now(),
		Client:     client,
		URL:        srv.URL + "/empty",
		TagsURL:    srv.URL + "/tags.json",
		InfoPath:   filepath.Join(dir, "missing.json"),
		OutputDir:  filepath.Join(dir, "pages"),
		OutputName: "rlvrcv2.json",
	}
	if err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected empty listing payload to be fatal")
	}
}
