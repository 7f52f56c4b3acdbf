// Package config loads the persistent newspanel configuration from
// ~/.newspanel/config.json and fills API keys in from the environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration.
type Config struct {
	// Image generation providers
	Render RenderConfig `json:"render"`

	// Feed sources; empty means the built-in German presets
	Feeds []FeedConfig `json:"feeds"`

	// Pipeline preferences
	Pipeline PipelineConfig `json:"pipeline"`
}

// RenderConfig holds image provider settings.
type RenderConfig struct {
	Preferred string          `json:"preferred"` // "grok" or "openai"
	Grok      ProviderSettings `json:"grok"`
	OpenAI    ProviderSettings `json:"openai"`
}

// ProviderSettings for a single image provider.
type ProviderSettings struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`
}

// FeedConfig is one configured news feed.
type FeedConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PipelineConfig holds prompt pipeline preferences.
type PipelineConfig struct {
	MaxHeadlines int    `json:"max_headlines"` // how many feed entries to pull per run
	ImageSize    string `json:"image_size"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Preferred: "grok",
			Grok:      ProviderSettings{Model: "grok-imagine-image"},
			OpenAI:    ProviderSettings{Model: "dall-e-3"},
		},
		Pipeline: PipelineConfig{
			MaxHeadlines: 12,
			ImageSize:    "1024x1024",
		},
	}
}

// Path returns the path to the config file.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".newspanel", "config.json")
}

// Load reads config from disk, or returns defaults. A corrupt file falls
// back to defaults rather than blocking startup.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.AutoPopulateFromEnv()
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	// Restrictive permissions, the file may hold API keys
	return os.WriteFile(path, data, 0600)
}

// AutoPopulateFromEnv fills in API keys from environment variables without
// overwriting keys already present in the file.
func (c *Config) AutoPopulateFromEnv() {
	if c.Render.Grok.APIKey == "" {
		if key := os.Getenv("GROK_API_KEY"); key != "" {
			c.Render.Grok.APIKey = key
		} else if key := os.Getenv("XAI_API_KEY"); key != "" {
			c.Render.Grok.APIKey = key
		}
	}
	if c.Render.OpenAI.APIKey == "" {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			c.Render.OpenAI.APIKey = key
		}
	}
}
