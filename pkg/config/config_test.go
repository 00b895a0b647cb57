package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanderheijden86/folio/pkg/keys"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.RowHeightPx != 20 {
		t.Errorf("expected row height 20, got %d", cfg.UI.RowHeightPx)
	}
	if cfg.UI.BackToTopPx != 600 {
		t.Errorf("expected back-to-top threshold 600, got %d", cfg.UI.BackToTopPx)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Errorf("expected dark theme, got %q", cfg.UI.Theme)
	}
	if cfg.Keys == nil {
		t.Error("expected keys map to be initialized")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.UI.RowHeightPx != 20 {
		t.Errorf("expected default config, got row height %d", cfg.UI.RowHeightPx)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
content: ~/portfolio.yaml
watch: true
ui:
  row_height_px: 16
  theme: Light
keys:
  p: "#projects"
  t: top
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	if cfg.Content != filepath.Join(home, "portfolio.yaml") {
		t.Errorf("expected expanded content path, got %q", cfg.Content)
	}
	if !cfg.Watch {
		t.Error("expected watch enabled")
	}
	if cfg.UI.RowHeightPx != 16 {
		t.Errorf("expected row height 16, got %d", cfg.UI.RowHeightPx)
	}
	// Unset values keep their defaults.
	if cfg.UI.BackToTopPx != 600 {
		t.Errorf("expected default threshold, got %d", cfg.UI.BackToTopPx)
	}
	if cfg.UI.Theme != ThemeLight {
		t.Errorf("expected normalized theme light, got %q", cfg.UI.Theme)
	}

	table, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if got, ok := table.Lookup("p"); !ok || got != keys.Anchor("projects") {
		t.Errorf("expected p -> #projects, got %v", got)
	}
	if got, ok := table.Lookup("g"); !ok || got != keys.Top() {
		t.Errorf("expected default g binding kept, got %v", got)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFrom_InvalidKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("keys:\n  p: projects\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "invalid keys") {
		t.Fatalf("expected invalid keys error, got %v", err)
	}
}

func TestLoadFrom_InvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected invalid theme error")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Watch = true
	cfg.Keys["e"] = "#experience"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !loaded.Watch || loaded.Keys["e"] != "#experience" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != "/tmp/xdg/folio" {
		t.Errorf("expected /tmp/xdg/folio, got %q", got)
	}
	if got := ConfigPath(); got != "/tmp/xdg/folio/config.yaml" {
		t.Errorf("unexpected config path %q", got)
	}
}
