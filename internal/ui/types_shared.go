package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/csams/richmark/internal/markdown"
)

// Cell is a single rune of formatted text placed on a display line
type Cell struct {
	Rune       rune
	Pos        int // Rune position in the formatted text
	Attributes markdown.Attributes
	Kinds      []markdown.Kind // Shared with the run, do not modify
}

// Line is one display line of wrapped formatted text
type Line []Cell

// String returns the text of the line
func (l Line) String() string {
	var b strings.Builder
	for _, c := range l {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Width returns the number of terminal columns the line occupies
func (l Line) Width() int {
	w := 0
	for _, c := range l {
		w += runewidth.RuneWidth(c.Rune)
	}
	return w
}

// word is a run of non-space cells and the first space that preceded it
type word struct {
	space Cell
	cells []Cell
}

// flatten expands the runs of ft into cells
func flatten(ft *markdown.FormattedText) []Cell {
	cells := make([]Cell, 0, len(ft.Text))
	for _, run := range ft.Runs() {
		pos := run.Start
		for _, r := range run.Text {
			cells = append(cells, Cell{Rune: r, Pos: pos, Attributes: run.Attributes, Kinds: run.Kinds})
			pos++
		}
	}
	return cells
}

// splitParagraphs splits cells at newlines, preserving empty paragraphs
func splitParagraphs(cells []Cell) [][]Cell {
	var paragraphs [][]Cell
	start := 0
	for i, c := range cells {
		if c.Rune == '\n' {
			paragraphs = append(paragraphs, cells[start:i])
			start = i + 1
		}
	}
	return append(paragraphs, cells[start:])
}

func isSpaceCell(c Cell) bool {
	return c.Rune == ' ' || c.Rune == '\t' || c.Rune == '\r'
}

// splitWords collapses whitespace between words. The styling of the first
// space is kept so underlined links stay continuous.
func splitWords(cells []Cell) []word {
	var words []word
	var space Cell
	haveSpace := false

	for i := 0; i < len(cells); {
		if isSpaceCell(cells[i]) {
			if !haveSpace {
				space = cells[i]
				space.Rune = ' '
				haveSpace = true
			}
			i++
			continue
		}

		j := i
		for j < len(cells) && !isSpaceCell(cells[j]) {
			j++
		}
		words = append(words, word{space: space, cells: cells[i:j]})
		haveSpace = false
		i = j
	}

	return words
}
