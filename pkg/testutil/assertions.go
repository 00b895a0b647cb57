package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/folio/pkg/content"
)

// AssertJSONEqual compares two values after JSON round-tripping.
// Useful for comparing structs that may have different Go representations
// but equivalent JSON forms.
func AssertJSONEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()

	expectedJSON, err := json.Marshal(expected)
	if err != nil {
		t.Fatalf("failed to marshal expected: %v", err)
	}

	actualJSON, err := json.Marshal(actual)
	if err != nil {
		t.Fatalf("failed to marshal actual: %v", err)
	}

	if string(expectedJSON) != string(actualJSON) {
		t.Errorf("JSON mismatch:\nexpected: %s\nactual:   %s", expectedJSON, actualJSON)
	}
}

// AssertLinesFit fails for the first rendered line wider than width cells.
func AssertLinesFit(t *testing.T, lines []string, width int) {
	t.Helper()
	for i, line := range lines {
		if w := lipgloss.Width(line); w > width {
			t.Fatalf("line %d is %d cells wide, limit %d: %q", i, w, width, line)
		}
	}
}

// WriteContentFile writes c as YAML to dir/name and returns the path.
func WriteContentFile(t *testing.T, dir, name string, c content.Content) string {
	t.Helper()

	data, err := yaml.Marshal(c)
	if err != nil {
		t.Fatalf("failed to marshal content: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}
	return path
}

// TempContentFile writes c to a fresh temp dir as portfolio.yaml.
func TempContentFile(t *testing.T, c content.Content) string {
	t.Helper()
	return WriteContentFile(t, t.TempDir(), "portfolio.yaml", c)
}
