package ui

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/csams/richmark/internal/markdown"
)

// Style converts merged markdown attributes to a tcell Style on top of base.
// kinds are the spans active over the text. Font family and size have no
// terminal equivalent; superscript text is drawn dim.
func Style(base tcell.Style, attrs markdown.Attributes, kinds []markdown.Kind) tcell.Style {
	style := base
	if attrs.Bold {
		style = style.Bold(true)
	}
	if attrs.Italic {
		style = style.Italic(true)
	}
	if attrs.Strikethrough {
		style = style.StrikeThrough(true)
	}
	if attrs.Underline {
		style = style.Underline(true)
	}
	if slices.Contains(kinds, markdown.KindSuperscript) {
		style = style.Dim(true)
	}
	if c, ok := parseColor(attrs.Foreground); ok {
		style = style.Foreground(c)
	}
	if attrs.Link != "" {
		style = style.Url(attrs.Link)
	}
	return style
}

// parseColor converts #rrggbb or #rgb to a tcell color
func parseColor(hex string) (tcell.Color, bool) {
	if hex == "" {
		return tcell.ColorDefault, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}
