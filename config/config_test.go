package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
feed:
  baseURL: https://feed.example.com/service/publicXMLFeed
  agency: testagency
  timeoutMS: 5000
polling:
  intervalMS: 15000
aggregation:
  concurrent: true
  partialResults: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Feed.BaseURL != "https://feed.example.com/service/publicXMLFeed" {
		t.Errorf("unexpected baseURL %q", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Agency != "testagency" {
		t.Errorf("unexpected agency %q", cfg.Feed.Agency)
	}
	if cfg.Feed.TimeoutMS != 5000 {
		t.Errorf("unexpected timeout %d", cfg.Feed.TimeoutMS)
	}
	if cfg.Polling.IntervalMS != 15000 {
		t.Errorf("unexpected interval %d", cfg.Polling.IntervalMS)
	}
	if !cfg.Aggregation.Concurrent || !cfg.Aggregation.PartialResults {
		t.Errorf("aggregation flags not honored: %+v", cfg.Aggregation)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
feed:
  agency: testagency
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Feed.BaseURL != DefaultBaseURL {
		t.Errorf("expected default baseURL, got %q", cfg.Feed.BaseURL)
	}
	if cfg.Feed.TimeoutMS != 10000 {
		t.Errorf("expected default timeout, got %d", cfg.Feed.TimeoutMS)
	}
	if cfg.Feed.MaxBodyBytes != 1<<20 {
		t.Errorf("expected default body ceiling, got %d", cfg.Feed.MaxBodyBytes)
	}
	if cfg.Polling.IntervalMS != 30000 {
		t.Errorf("expected default interval, got %d", cfg.Polling.IntervalMS)
	}
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	path := writeConfig(t, `
feed:
  baseURL: not-a-url
  agency: testagency
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation to reject a malformed baseURL")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Feed.BaseURL != DefaultBaseURL || cfg.Feed.Agency != DefaultAgency {
		t.Errorf("unexpected defaults: %+v", cfg.Feed)
	}
	if cfg.Polling.IntervalMS != 30000 {
		t.Errorf("unexpected default interval %d", cfg.Polling.IntervalMS)
	}
}
