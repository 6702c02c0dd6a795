package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deusflow/trendbrief/internal/config"
)

func TestParseOptions(t *testing.T) {
	opts, handled, err := parseOptions([]string{
		"-c", "제약", "--category", "의료기기",
		"--format", "text", "--no-llm", "--interval", "6h",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if handled {
		t.Error("plain options must not count as a settings command")
	}
	if len(opts.Categories) != 2 || opts.Categories[1] != "의료기기" {
		t.Errorf("unexpected categories %q", opts.Categories)
	}
	if opts.Format != "text" || !opts.NoLLM || opts.Interval != 6*time.Hour {
		t.Errorf("unexpected options %+v", opts)
	}

	if _, _, err := parseOptions([]string{"--format", "xml"}, io.Discard); err == nil {
		t.Error("unknown format should be rejected")
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := &config.Config{SettingsPath: "configs/settings.yaml", LLMEnabled: true}
	opts := &Options{Settings: "/tmp/s.yaml", NoLLM: true, Translate: true, Analyze: true, Monitor: ":9090"}
	opts.apply(cfg)

	if cfg.SettingsPath != "/tmp/s.yaml" || cfg.LLMEnabled || !cfg.TranslateTop || !cfg.AnalyzeTop || cfg.MonitoringAddr != ":9090" {
		t.Errorf("options not applied: %+v", cfg)
	}

	untouched := &config.Config{OutputPath: "out.json"}
	(&Options{}).apply(untouched)
	if untouched.OutputPath != "out.json" {
		t.Error("empty options must not override the config")
	}
}

func TestMonitor(t *testing.T) {
	healthy := true
	srv := newMonitor(func() map[string]interface{} {
		return map[string]interface{}{
			"is_healthy":          healthy,
			"last_run_time":       "2026-03-01T09:00:00Z",
			"last_error":          "",
			"llm_calls":           4,
			"llm_quota_exhausted": false,
		}
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected health body %v", body)
	}

	healthy = false
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when unhealthy, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["llm_calls"] != float64(4) {
		t.Errorf("unexpected metrics body %v", body)
	}
}
