package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/csams/richmark/internal/markdown"
)

// WrapFormatted word-wraps formatted text to width columns. Newlines start a
// new paragraph, empty paragraphs are kept as empty lines and words wider
// than width are split.
func WrapFormatted(ft *markdown.FormattedText, width int) []Line {
	if width <= 0 || ft == nil {
		return []Line{}
	}

	var lines []Line
	for _, paragraph := range splitParagraphs(flatten(ft)) {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(cells []Cell, width int) []Line {
	words := splitWords(cells)
	if len(words) == 0 {
		return []Line{{}}
	}

	var lines []Line
	var current Line
	currentWidth := 0

	for _, w := range words {
		wordWidth := Line(w.cells).Width()
		if len(current) > 0 && currentWidth+1+wordWidth > width {
			lines = append(lines, current)
			current = nil
			currentWidth = 0
		}

		if len(current) > 0 {
			current = append(current, w.space)
			currentWidth++
		}

		for _, c := range w.cells {
			cw := runewidth.RuneWidth(c.Rune)
			if len(current) > 0 && currentWidth+cw > width {
				lines = append(lines, current)
				current = nil
				currentWidth = 0
			}
			current = append(current, c)
			currentWidth += cw
		}
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// DrawLines draws lines at (x, y), clipping each to maxWidth columns and
// padding the rest with base. Cells whose position is in highlights are drawn
// with the theme highlight, cells inside focus with the selection background.
func DrawLines(s tcell.Screen, x, y, maxWidth int, lines []Line, theme Theme, highlights []int, focus *markdown.Span) int {
	highlightMap := make(map[int]bool, len(highlights))
	for _, pos := range highlights {
		highlightMap[pos] = true
	}

	base := theme.BaseStyle()
	for i, line := range lines {
		screenPos := 0
		for _, c := range line {
			cw := runewidth.RuneWidth(c.Rune)
			if screenPos+cw > maxWidth {
				break
			}

			style := Style(base, c.Attributes, c.Kinds)
			if focus != nil && c.Pos >= focus.Start && c.Pos < focus.End {
				style = style.Background(theme.Selection)
			}
			if highlightMap[c.Pos] {
				style = style.Foreground(theme.Highlight).Bold(true)
			}

			s.SetContent(x+screenPos, y+i, c.Rune, nil, style)
			screenPos += cw
		}

		for col := screenPos; col < maxWidth; col++ {
			s.SetContent(x+col, y+i, ' ', nil, base)
		}
	}

	return len(lines)
}

// DrawFormatted wraps ft to width and draws at most maxLines lines of it
func DrawFormatted(s tcell.Screen, x, y, width, maxLines int, ft *markdown.FormattedText, theme Theme, highlights []int) int {
	lines := WrapFormatted(ft, width)
	if maxLines >= 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return DrawLines(s, x, y, width, lines, theme, highlights, nil)
}

// drawText draws plain text with a single style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	pos := 0
	for _, r := range text {
		s.SetContent(x+pos, y, r, nil, style)
		pos += runewidth.RuneWidth(r)
	}
}
