package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/csams/richmark/internal/markdown"
)

// TokyoNight color palette
var (
	// Background colors
	ColorBg          = tcell.NewRGBColor(0x1a, 0x1b, 0x26) // #1a1b26 - Dark background
	ColorBgDark      = tcell.NewRGBColor(0x16, 0x16, 0x1e) // #16161e - Darker background
	ColorBgHighlight = tcell.NewRGBColor(0x29, 0x2e, 0x42) // #292e42 - Highlighted background

	// Foreground colors
	ColorFg     = tcell.NewRGBColor(0xc0, 0xca, 0xf5) // #c0caf5 - Default text
	ColorFgDark = tcell.NewRGBColor(0x56, 0x5f, 0x89) // #565f89 - Dimmed text

	// Accent colors
	ColorBlue    = tcell.NewRGBColor(0x7a, 0xa2, 0xf7) // #7aa2f7 - Primary blue
	ColorCyan    = tcell.NewRGBColor(0x7d, 0xcf, 0xff) // #7dcfff - Cyan
	ColorGreen   = tcell.NewRGBColor(0x9e, 0xce, 0x6a) // #9ece6a - Green
	ColorMagenta = tcell.NewRGBColor(0xbb, 0x9a, 0xf7) // #bb9af7 - Purple/Magenta
	ColorOrange  = tcell.NewRGBColor(0xff, 0x9e, 0x64) // #ff9e64 - Orange
	ColorRed     = tcell.NewRGBColor(0xf7, 0x76, 0x8e) // #f7768e - Red
	ColorYellow  = tcell.NewRGBColor(0xe0, 0xaf, 0x68) // #e0af68 - Yellow

	// Special colors
	ColorComment = tcell.NewRGBColor(0x56, 0x5f, 0x89) // #565f89 - Comments
	ColorBorder  = tcell.NewRGBColor(0x29, 0x2e, 0x42) // #292e42 - Borders

	// UI-specific color mappings
	ColorSelection = ColorBgHighlight // Focused link background
	ColorHeader    = ColorBlue        // Viewer title
	ColorLink      = ColorCyan        // Hyperlink text
	ColorHighlight = ColorYellow      // Search highlights
	ColorDimmed    = ColorFgDark      // Dimmed text
)

// Theme holds the colors used to draw formatted text
type Theme struct {
	Text       tcell.Color
	Background tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	Link       tcell.Color
	Highlight  tcell.Color
	Selection  tcell.Color
	Dimmed     tcell.Color
}

// DefaultTheme returns the TokyoNight theme
func DefaultTheme() Theme {
	return Theme{
		Text:       ColorFg,
		Background: ColorBg,
		Border:     ColorBorder,
		Title:      ColorHeader,
		Link:       ColorLink,
		Highlight:  ColorHighlight,
		Selection:  ColorSelection,
		Dimmed:     ColorDimmed,
	}
}

// BaseStyle is the style of text outside any markup
func (t Theme) BaseStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Text).Background(t.Background)
}

// FormatterOptions returns the markdown options that carry the theme into
// merged attributes
func (t Theme) FormatterOptions() []markdown.Option {
	hex, ok := colorHex(t.Link)
	if !ok {
		return nil
	}
	return []markdown.Option{markdown.WithLinkColor(hex)}
}

// colorHex formats a color as #rrggbb. The default color has no hex form.
func colorHex(c tcell.Color) (string, bool) {
	v := c.Hex()
	if v < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06x", v), true
}
