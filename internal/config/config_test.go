package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.LLMEnabled {
		t.Error("LLM pass must be off without an API key")
	}
	if cfg.LLMModel != "gemini-2.5-flash-lite" || cfg.LLMBatchSize != 20 || cfg.LLMMaxRetries != 3 {
		t.Errorf("unexpected LLM defaults: %+v", cfg)
	}
	if cfg.LLMMinInterval != 7*time.Second || cfg.LLMTimeout != 60*time.Second {
		t.Errorf("unexpected timing defaults: %v %v", cfg.LLMMinInterval, cfg.LLMTimeout)
	}
	if cfg.LLMRetryDelay != time.Second || cfg.LLMMaxBackoff != 10*time.Second {
		t.Errorf("unexpected backoff defaults: %v %v", cfg.LLMRetryDelay, cfg.LLMMaxBackoff)
	}
	if cfg.MinKeywordScore != 3 || cfg.WidenFactor != 2 || !cfg.GlobalOnly {
		t.Errorf("unexpected scoring defaults: %+v", cfg)
	}
}

func TestLoad_LLMCapabilityFlag(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.LLMEnabled {
		t.Error("a key should enable the LLM pass")
	}

	t.Setenv("LLM_SCORING_ENABLED", "false")
	cfg, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLMEnabled {
		t.Error("LLM_SCORING_ENABLED=false must win over the key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_MIN_INTERVAL", "2")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("CATEGORIES", " 제약, 의료기기 ,,")
	t.Setenv("GLOBAL_ONLY", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLMMinInterval != 2*time.Second || cfg.LLMTimeout != 90*time.Second {
		t.Errorf("durations not parsed: %v %v", cfg.LLMMinInterval, cfg.LLMTimeout)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[1] != "의료기기" {
		t.Errorf("categories not split: %q", cfg.Categories)
	}
	if cfg.GlobalOnly {
		t.Error("GLOBAL_ONLY=false not applied")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			SettingsPath:    "s.yaml",
			LLMBatchSize:    20,
			LLMMaxRetries:   3,
			LLMTimeout:      time.Minute,
			KeywordWeight:   0.3,
			RelevanceWeight: 0.7,
			WidenFactor:     2,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"weights must sum to one", func(c *Config) { c.RelevanceWeight = 0.5 }, "must equal 1"},
		{"batch size", func(c *Config) { c.LLMBatchSize = 0 }, "LLM_BATCH_SIZE"},
		{"widen factor", func(c *Config) { c.WidenFactor = 0 }, "WIDEN_FACTOR"},
		{"settings path", func(c *Config) { c.SettingsPath = "" }, "SETTINGS_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
