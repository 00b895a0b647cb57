// Package config handles loading and saving folio configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/folio/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/folio/pkg/keys"
	"github.com/vanderheijden86/folio/pkg/scroll"
)

// Theme names accepted by ui.theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeNoTTY = "notty"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	RowHeightPx int    `yaml:"row_height_px,omitempty"`  // Pixel height of one terminal row (default 20)
	BackToTopPx int    `yaml:"back_to_top_px,omitempty"` // Offset past which "Top" shows (default 600)
	Theme       string `yaml:"theme,omitempty"`          // dark, light, notty
	MaxWidth    int    `yaml:"max_width,omitempty"`      // Content column cap (default 100)
}

// Config is the top-level configuration for folio.
type Config struct {
	Content string            `yaml:"content,omitempty"` // Path to a content YAML file; empty = built-in
	Watch   bool              `yaml:"watch,omitempty"`   // Reload content when the file changes
	UI      UIConfig          `yaml:"ui,omitempty"`
	Keys    map[string]string `yaml:"keys,omitempty"` // Extra bindings: key -> "top" | "#anchor"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			RowHeightPx: 20,
			BackToTopPx: scroll.DefaultThreshold,
			Theme:       ThemeDark,
			MaxWidth:    100,
		},
		Keys: make(map[string]string),
	}
}

// ConfigDir returns the XDG config directory for folio.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "folio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "folio")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the key bindings and theme name.
func (c Config) Validate() error {
	if _, err := keys.TableFromConfig(c.Keys); err != nil {
		return fmt.Errorf("invalid keys: %w", err)
	}
	switch c.UI.Theme {
	case ThemeDark, ThemeLight, ThemeNoTTY:
	default:
		return fmt.Errorf("invalid ui.theme %q (want dark, light or notty)", c.UI.Theme)
	}
	return nil
}

// KeyTable builds the router table for this config.
func (c Config) KeyTable() (keys.Table, error) {
	return keys.TableFromConfig(c.Keys)
}

// normalize fills zero values left by a partial file.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UI.RowHeightPx <= 0 {
		c.UI.RowHeightPx = def.UI.RowHeightPx
	}
	if c.UI.BackToTopPx <= 0 {
		c.UI.BackToTopPx = def.UI.BackToTopPx
	}
	if c.UI.MaxWidth <= 0 {
		c.UI.MaxWidth = def.UI.MaxWidth
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.Keys == nil {
		c.Keys = make(map[string]string)
	}
	c.Content = expandHome(c.Content)
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
