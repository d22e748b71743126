// Package config handles configuration loading and validation for tubetui.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig `yaml:"api"`
	TUI     TUIConfig `yaml:"tui"`
	DataDir string    `yaml:"-"` // set by caller, not from config file
}

// APIConfig points at the backend collaborators.
type APIConfig struct {
	// BaseURL is the root of the comment retrieval, answering, and auth
	// services.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each outbound request. The client makes a single
	// attempt per user action; there is no retry layer.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme       string `yaml:"theme"`
	CopyCommand string `yaml:"copy_command"`
	PageSize    int    `yaml:"page_size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 30,
		},
		TUI: TUIConfig{
			Theme:       "tokyo-night",
			CopyCommand: defaultCopyCommand(),
			PageSize:    10,
		},
	}
}

func defaultCopyCommand() string {
	if runtime.GOOS == "darwin" {
		return "pbcopy"
	}
	return "xclip -selection clipboard"
}

// Load reads the config file at path, layering it over the defaults. A
// missing file is not an error; the defaults apply.
func Load(path, dataDir string) (Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the rest of the app assumes.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.TUI.PageSize < 1 || c.TUI.PageSize > 100 {
		return fmt.Errorf("tui.page_size must be between 1 and 100, got %d", c.TUI.PageSize)
	}
	return nil
}
