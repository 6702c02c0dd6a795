// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Gemini settings
	GeminiAPIKey string
	LLMModel     string
	// LLMEnabled is decided once here: a key is present and LLM_SCORING_ENABLED is not false.
	LLMEnabled      bool
	LLMBatchSize    int
	LLMTimeout      time.Duration
	LLMMaxRetries   int
	LLMRetryDelay   time.Duration // first backoff step, doubled per attempt
	LLMMaxBackoff   time.Duration
	LLMMinInterval  time.Duration // spacing between any two Gemini calls
	LLMTemperature  float64
	KeywordWeight   float64
	RelevanceWeight float64
	TranslateTop    bool // add Korean title/summary to selected articles
	AnalyzeTop      bool // add country, one-liner, hashtags and a 3 sentence summary

	// Scoring settings
	MinKeywordScore float64
	WidenFactor     int
	GlobalOnly      bool // drop Korean domestic outlets

	// Collection settings
	SettingsPath string
	Categories   []string // empty = every category in the settings file
	NewsMaxAge   time.Duration
	SearchPause  time.Duration
	FetchTimeout time.Duration
	RatingsTTL   time.Duration
	OutputPath   string

	// App settings
	Debug          bool
	MonitoringAddr string // empty disables /health and /metrics
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		LLMModel:        "gemini-2.5-flash-lite",
		LLMBatchSize:    20,
		LLMTimeout:      60 * time.Second,
		LLMMaxRetries:   3,
		LLMRetryDelay:   time.Second,
		LLMMaxBackoff:   10 * time.Second,
		LLMMinInterval:  7 * time.Second,
		LLMTemperature:  0.1,
		KeywordWeight:   0.3,
		RelevanceWeight: 0.7,
		MinKeywordScore: 3,
		WidenFactor:     2,
		GlobalOnly:      true,
		NewsMaxAge:      14 * 24 * time.Hour,
		SearchPause:     500 * time.Millisecond,
		FetchTimeout:    30 * time.Second,
		RatingsTTL:      24 * time.Hour,
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.LLMModel = getEnvOrDefault("LLM_MODEL", cfg.LLMModel)
	cfg.LLMEnabled = cfg.GeminiAPIKey != "" && getEnvBoolOrDefault("LLM_SCORING_ENABLED", true)
	cfg.LLMBatchSize = getEnvIntOrDefault("LLM_BATCH_SIZE", cfg.LLMBatchSize)
	cfg.LLMTimeout = getEnvDurationOrDefault("LLM_TIMEOUT", cfg.LLMTimeout)
	cfg.LLMMaxRetries = getEnvIntOrDefault("LLM_MAX_RETRIES", cfg.LLMMaxRetries)
	cfg.LLMRetryDelay = getEnvDurationOrDefault("LLM_RETRY_DELAY", cfg.LLMRetryDelay)
	cfg.LLMMaxBackoff = getEnvDurationOrDefault("LLM_MAX_BACKOFF", cfg.LLMMaxBackoff)
	cfg.LLMMinInterval = getEnvDurationOrDefault("LLM_MIN_INTERVAL", cfg.LLMMinInterval)
	cfg.LLMTemperature = getEnvFloatOrDefault("LLM_TEMPERATURE", cfg.LLMTemperature)
	cfg.KeywordWeight = getEnvFloatOrDefault("LLM_KEYWORD_WEIGHT", cfg.KeywordWeight)
	cfg.RelevanceWeight = getEnvFloatOrDefault("LLM_RELEVANCE_WEIGHT", cfg.RelevanceWeight)
	cfg.TranslateTop = getEnvBoolOrDefault("TRANSLATE_SELECTED", false)
	cfg.AnalyzeTop = getEnvBoolOrDefault("ANALYZE_SELECTED", false)

	cfg.MinKeywordScore = getEnvFloatOrDefault("MIN_KEYWORD_SCORE", cfg.MinKeywordScore)
	cfg.WidenFactor = getEnvIntOrDefault("WIDEN_FACTOR", cfg.WidenFactor)
	cfg.GlobalOnly = getEnvBoolOrDefault("GLOBAL_ONLY", cfg.GlobalOnly)

	cfg.SettingsPath = getEnvOrDefault("SETTINGS_PATH", "configs/settings.yaml")
	cfg.Categories = splitList(os.Getenv("CATEGORIES"))
	cfg.NewsMaxAge = getEnvDurationOrDefault("NEWS_MAX_AGE", cfg.NewsMaxAge)
	cfg.SearchPause = getEnvDurationOrDefault("SEARCH_PAUSE", cfg.SearchPause)
	cfg.FetchTimeout = getEnvDurationOrDefault("FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.RatingsTTL = getEnvDurationOrDefault("RATINGS_TTL", cfg.RatingsTTL)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", "")

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}
	cfg.MonitoringAddr = os.Getenv("MONITORING_ADDR")

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("7s") or plain seconds ("7").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("SETTINGS_PATH is required")
	}
	if c.LLMBatchSize <= 0 {
		return fmt.Errorf("LLM_BATCH_SIZE must be positive, got %d", c.LLMBatchSize)
	}
	if c.LLMMaxRetries <= 0 {
		return fmt.Errorf("LLM_MAX_RETRIES must be positive, got %d", c.LLMMaxRetries)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.LLMMinInterval < 0 {
		return fmt.Errorf("LLM_MIN_INTERVAL must not be negative")
	}
	if c.KeywordWeight < 0 || c.RelevanceWeight < 0 {
		return fmt.Errorf("LLM weights must not be negative")
	}
	if math.Abs(c.KeywordWeight+c.RelevanceWeight-1) > 1e-9 {
		return fmt.Errorf("LLM_KEYWORD_WEIGHT + LLM_RELEVANCE_WEIGHT must equal 1, got %.2f", c.KeywordWeight+c.RelevanceWeight)
	}
	if c.WidenFactor < 1 {
		return fmt.Errorf("WIDEN_FACTOR must be at least 1, got %d", c.WidenFactor)
	}
	if c.NewsMaxAge < 0 {
		return fmt.Errorf("NEWS_MAX_AGE must not be negative")
	}
	return nil
}
