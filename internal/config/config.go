// Package config loads and validates runtime configuration for the
// scrape and analyze pipelines.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingURL        = errors.New("source.url is required")
	ErrMissingSelector   = errors.New("source.title_selector and source.subtitle_selector are required")
	ErrMissingCSVPath    = errors.New("storage.csv_path is required")
	ErrMissingChartsDir  = errors.New("charts.dir is required")
	ErrInvalidTopWords   = errors.New("charts.top_words must be at least 1")
	ErrInvalidCloudWords = errors.New("charts.max_cloud_words must be at least 1")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete runtime configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Storage StorageConfig `yaml:"storage"`
	Charts  ChartsConfig  `yaml:"charts"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes the listing page to scrape.
type SourceConfig struct {
	URL              string `yaml:"url"`
	UserAgent        string `yaml:"user_agent"`
	TitleSelector    string `yaml:"title_selector"`
	SubtitleSelector string `yaml:"subtitle_selector"`
	TimeoutSec       int    `yaml:"timeout_sec"`
}

// StorageConfig describes the CSV handoff file between the two pipelines.
type StorageConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// ChartsConfig describes chart output.
type ChartsConfig struct {
	Dir           string `yaml:"dir"`
	FontFile      string `yaml:"font_file"`
	TopWords      int    `yaml:"top_words"`
	MaxCloudWords int    `yaml:"max_cloud_words"`
}

// ReportConfig describes the assembled PDF report.
type ReportConfig struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided. The
// defaults reproduce the Infobae América setup.
func Default() Config {
	return Config{
		Source: SourceConfig{
			URL:              "https://www.infobae.com/america/",
			UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TitleSelector:    "h2.story-card-hl",
			SubtitleSelector: "h3.story-card-deck",
			TimeoutSec:       30,
		},
		Storage: StorageConfig{
			CSVPath: "infobae_noticias.csv",
		},
		Charts: ChartsConfig{
			Dir:           "graficos",
			FontFile:      "fonts/Roboto-Regular.ttf",
			TopWords:      15,
			MaxCloudWords: 200,
		},
		Report: ReportConfig{
			Path:  "reporte_analisis.pdf",
			Title: "Reporte de Análisis: Infobae América",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields both pipelines depend on.
func (c Config) Validate() error {
	if c.Source.URL == "" {
		return ErrMissingURL
	}
	if c.Source.TitleSelector == "" || c.Source.SubtitleSelector == "" {
		return ErrMissingSelector
	}
	if c.Storage.CSVPath == "" {
		return ErrMissingCSVPath
	}
	if c.Charts.Dir == "" {
		return ErrMissingChartsDir
	}
	if c.Charts.TopWords < 1 {
		return ErrInvalidTopWords
	}
	if c.Charts.MaxCloudWords < 1 {
		return ErrInvalidCloudWords
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// Timeout returns the per-request fetch timeout.
func (c SourceConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}
