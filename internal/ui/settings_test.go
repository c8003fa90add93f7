package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/csams/richmark/internal/markdown"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *settings != *DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	saved := &Settings{
		FontFamily:       "Menlo",
		FontSize:         12,
		LinkColor:        "#ff0000",
		SuperscriptScale: 0.5,
		CaseSensitive:    true,
		MinScore:         ScoreThresholdStrict,
	}

	if err := SaveSettings(dir, saved); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}
	loaded, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("Expected %+v, got %+v", saved, loaded)
	}
}

func TestLoadSettingsFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"fontFamily": "", "fontSize": 0}`), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	settings, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if settings.FontFamily != markdown.DefaultFontFamily || settings.FontSize != markdown.DefaultFontSize {
		t.Errorf("Expected default font, got %q %v", settings.FontFamily, settings.FontSize)
	}
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if _, err := LoadSettings(dir); err == nil {
		t.Error("Expected error for invalid JSON")
	}
	if settings := LoadSettingsOrDefault(dir); *settings != *DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestSettingsFormatter(t *testing.T) {
	settings := DefaultSettings()
	settings.LinkColor = "#ff0000"

	theme := settings.Theme()
	if theme.Link != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("Expected red link color, got %v", theme.Link)
	}

	formatter, err := settings.NewFormatter(theme)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ft, err := formatter.Format("[a](b)", settings.BaseAttributes())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := ft.Runs()[0].Attributes.Foreground; got != "#ff0000" {
		t.Errorf("Expected #ff0000, got %q", got)
	}

	settings.SuperscriptScale = 3
	if _, err := settings.NewFormatter(theme); !errors.Is(err, markdown.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestSettingsInvalidLinkColorKeepsTheme(t *testing.T) {
	settings := DefaultSettings()
	settings.LinkColor = "red"
	if theme := settings.Theme(); theme.Link != ColorLink {
		t.Errorf("Expected default link color, got %v", theme.Link)
	}
}
