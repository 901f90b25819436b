package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalyzeConfig holds runtime configuration for analysis runs. Values
// come from an optional YAML file; CLI flags override individual fields.
type AnalyzeConfig struct {
	InputDir        string  `yaml:"input_dir"`
	OutputDir       string  `yaml:"output_dir"`
	Format          string  `yaml:"format"` // json or yaml
	HistoryDB       string  `yaml:"history_db"`
	EventThreshold  float64 `yaml:"event_threshold"`
	PersistMonths   int     `yaml:"persist_months"`
	DetectLanguages bool    `yaml:"detect_languages"`
	FallbackMonth   string  `yaml:"fallback_month"`
}

// DefaultAnalyzeConfig returns the built-in defaults.
func DefaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		InputDir:        "tweets_organized",
		OutputDir:       "analysis_results",
		Format:          "json",
		EventThreshold:  0.2,
		PersistMonths:   3,
		DetectLanguages: true,
		FallbackMonth:   "2024-01",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (AnalyzeConfig, error) {
	cfg := DefaultAnalyzeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
