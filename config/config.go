package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HTTPConfig controls the shared HTTP client.
type HTTPConfig struct {
	UserAgent      string `yaml:"user_agent"`
	AcceptLanguage string `yaml:"accept_language"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// NaverConfig controls the paginated Naver news search backend.
type NaverConfig struct {
	BaseURL  string `yaml:"base_url"`
	PageSize int    `yaml:"page_size"`
}

// GoogleConfig controls the Google News feed endpoint and its HTML search
// fallback. HTMLMaxResults is the backend's hard cap on the num parameter.
type GoogleConfig struct {
	RSSURL         string `yaml:"rss_url"`
	HTMLURL        string `yaml:"html_url"`
	HTMLMaxResults int    `yaml:"html_max_results"`
}

// PolitenessConfig shapes the delay between successive page requests to the
// same backend. Burst 1 means every page after the first waits out the full
// interval.
type PolitenessConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// LoggingConfig sets the engine log level ("debug", "info", "warn", ...).
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the full engine configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Naver      NaverConfig      `yaml:"naver"`
	Google     GoogleConfig     `yaml:"google"`
	Politeness PolitenessConfig `yaml:"politeness"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Default returns the built-in configuration: real backend endpoints, a
// browser user agent, Korean response language, a 12 second request
// timeout, and a 100ms politeness interval between pages.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
				"AppleWebKit/537.36 (KHTML, like Gecko) " +
				"Chrome/120.0.0.0 Safari/537.36",
			AcceptLanguage: "ko-KR,ko;q=0.9",
			TimeoutSeconds: 12,
		},
		Naver: NaverConfig{
			BaseURL:  "https://search.naver.com/search.naver",
			PageSize: 10,
		},
		Google: GoogleConfig{
			RSSURL:         "https://news.google.com/rss/search",
			HTMLURL:        "https://www.google.com/search",
			HTMLMaxResults: 100,
		},
		Politeness: PolitenessConfig{
			RequestsPerSecond: 10,
			Burst:             1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults. A missing
// file is not an error -- the defaults are returned unchanged. A file that
// exists but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
