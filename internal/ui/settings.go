package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/csams/richmark/internal/markdown"
)

// Settings holds the rendering settings
type Settings struct {
	// FontFamily is the base font family handed to the formatter
	// Default: "system"
	FontFamily string `json:"fontFamily"`

	// FontSize is the base point size
	// Default: 14
	FontSize float64 `json:"fontSize"`

	// LinkColor overrides the theme link color, as #rrggbb
	LinkColor string `json:"linkColor,omitempty"`

	// SuperscriptScale is the size multiplier for superscript text
	// Default: 0.7
	SuperscriptScale float64 `json:"superscriptScale,omitempty"`

	// CaseSensitive enables case sensitive search
	CaseSensitive bool `json:"caseSensitive,omitempty"`

	// MinScore is the fzf score threshold for search matches
	// Default: 50
	MinScore int `json:"minScore"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		FontFamily:       markdown.DefaultFontFamily,
		FontSize:         markdown.DefaultFontSize,
		SuperscriptScale: 0.7,
		MinScore:         ScoreThresholdNormal,
	}
}

// LoadSettings loads the settings from the config directory
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	// Return default settings if file doesn't exist
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// Missing or zeroed fields fall back to defaults
	if settings.FontFamily == "" {
		settings.FontFamily = markdown.DefaultFontFamily
	}
	if settings.FontSize <= 0 {
		settings.FontSize = markdown.DefaultFontSize
	}

	return settings, nil
}

// LoadSettingsOrDefault loads the settings, logging and falling back to the
// defaults on error
func LoadSettingsOrDefault(configDir string) *Settings {
	settings, err := LoadSettings(configDir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves the settings to the config directory
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// BaseAttributes returns the base style for formatted text
func (s *Settings) BaseAttributes() markdown.Attributes {
	return markdown.Attributes{
		Family: s.FontFamily,
		Size:   s.FontSize,
	}
}

// Theme returns the default theme with the configured link color applied
func (s *Settings) Theme() Theme {
	theme := DefaultTheme()
	if c, ok := parseColor(s.LinkColor); ok {
		theme.Link = c
	} else if s.LinkColor != "" {
		log.Printf("Ignoring invalid link color %q", s.LinkColor)
	}
	return theme
}

// NewFormatter builds a formatter for theme using the configured options
func (s *Settings) NewFormatter(theme Theme) (*markdown.Formatter, error) {
	opts := theme.FormatterOptions()
	if s.SuperscriptScale != 0 {
		opts = append(opts, markdown.WithSuperscriptScale(s.SuperscriptScale))
	}
	return markdown.NewFormatter(opts...)
}

// NewSearcher builds a searcher using the configured options
func (s *Settings) NewSearcher() *Searcher {
	searcher := NewSearcher()
	searcher.SetCaseSensitive(s.CaseSensitive)
	searcher.SetMinScore(s.MinScore)
	return searcher
}
