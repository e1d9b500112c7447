package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file shape.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Flashcards FlashcardsConfig `yaml:"flashcards"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig configures the upstream dictionary fetches.
type DictionaryConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Retries        int    `yaml:"retries"`
}

// Timeout returns the per-request timeout as a duration.
func (c DictionaryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FlashcardsConfig configures the remote flashcard service.
type FlashcardsConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	Collection string `yaml:"collection"`
}

// DatabaseConfig configures the local SQLite mirror.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads and decodes a YAML config file, applying defaults for
// anything left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dictionary.TimeoutSeconds <= 0 {
		c.Dictionary.TimeoutSeconds = 20
	}
	if c.Dictionary.Retries <= 0 {
		c.Dictionary.Retries = 3
	}
	if c.Database.Path == "" {
		c.Database.Path = "wortkarten.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
