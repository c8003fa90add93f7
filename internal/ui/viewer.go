package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/csams/richmark/internal/markdown"
)

// Viewer is a dialog that shows formatted markdown with scrolling, fuzzy
// search highlighting and keyboard focus on hyperlinks
type Viewer struct {
	title     string
	settings  *Settings
	theme     Theme
	formatter *markdown.Formatter
	searcher  *Searcher

	text  *markdown.FormattedText
	links []markdown.Span

	visible      bool
	scrollOffset int
	visibleLines int
	focusedLink  int
	match        MatchResult

	// Wrapped lines for linesWidth
	lines      []Line
	linesWidth int
}

func NewViewer(title string, settings *Settings) (*Viewer, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	theme := settings.Theme()
	formatter, err := settings.NewFormatter(theme)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	return &Viewer{
		title:        title,
		settings:     settings,
		theme:        theme,
		formatter:    formatter,
		searcher:     settings.NewSearcher(),
		focusedLink:  -1,
		visibleLines: 1,
	}, nil
}

// SetText formats text and resets scroll, focus and search state
func (v *Viewer) SetText(text string) error {
	ft, err := v.formatter.Format(text, v.settings.BaseAttributes())
	if err != nil {
		return err
	}

	v.text = ft
	v.links = nil
	for _, sp := range ft.Spans {
		if sp.Kind == markdown.KindHyperlink {
			v.links = append(v.links, sp)
		}
	}
	v.scrollOffset = 0
	v.focusedLink = -1
	v.match = MatchResult{}
	v.lines = nil
	v.linesWidth = 0
	return nil
}

// Text returns the formatted text being shown
func (v *Viewer) Text() *markdown.FormattedText {
	return v.text
}

func (v *Viewer) Show() {
	v.visible = true
	v.scrollOffset = 0 // Reset scroll when showing
}

func (v *Viewer) Hide() {
	v.visible = false
}

func (v *Viewer) IsVisible() bool {
	return v.visible
}

// Search highlights the fuzzy matches of query and reports whether there
// were any. An empty query clears the highlights.
func (v *Viewer) Search(query string) bool {
	v.match = v.searcher.MatchFormatted(v.text, query)
	if len(v.match.Positions) > 0 {
		v.scrollTo(v.match.Positions[0])
	}
	return v.match.Matched()
}

// Highlights returns the positions of the current search match
func (v *Viewer) Highlights() []int {
	return v.match.Positions
}

// FocusedLink returns the target of the focused hyperlink
func (v *Viewer) FocusedLink() (string, bool) {
	if v.focusedLink < 0 || v.focusedLink >= len(v.links) {
		return "", false
	}
	return v.links[v.focusedLink].Payload, true
}

// ScrollOffset returns the index of the first visible line
func (v *Viewer) ScrollOffset() int {
	return v.scrollOffset
}

func (v *Viewer) Draw(s tcell.Screen) {
	if !v.visible {
		return
	}

	w, screenHeight := s.Size()

	// Leave at least 2 chars margin on each side
	dialogWidth := w - 4
	if dialogWidth < 20 {
		dialogWidth = w
	}
	contentWidth := dialogWidth - 4 // 2 for borders, 2 for margins
	lines := v.wrap(contentWidth)

	// Content + borders + title
	dialogHeight := len(lines) + 4
	if dialogHeight > screenHeight-2 {
		dialogHeight = screenHeight - 2
	}
	if dialogHeight < 5 {
		dialogHeight = 5
	}
	v.visibleLines = dialogHeight - 4
	v.clampScroll()

	// Center the dialog
	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2

	dialogStyle := v.theme.BaseStyle()
	for y := startY; y < startY+dialogHeight; y++ {
		for x := startX; x < startX+dialogWidth; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}

	borderStyle := dialogStyle.Foreground(v.theme.Border)

	// Top and bottom border
	for x := startX; x < startX+dialogWidth; x++ {
		if x == startX {
			s.SetContent(x, startY, '┌', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '└', nil, borderStyle)
		} else if x == startX+dialogWidth-1 {
			s.SetContent(x, startY, '┐', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '┘', nil, borderStyle)
		} else {
			s.SetContent(x, startY, '─', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '─', nil, borderStyle)
		}
	}

	// Left and right border
	for y := startY + 1; y < startY+dialogHeight-1; y++ {
		s.SetContent(startX, y, '│', nil, borderStyle)
		s.SetContent(startX+dialogWidth-1, y, '│', nil, borderStyle)
	}

	titleStyle := dialogStyle.Foreground(v.theme.Title).Bold(true)
	drawText(s, startX+2, startY+1, titleStyle, v.title)

	end := v.scrollOffset + v.visibleLines
	if end > len(lines) {
		end = len(lines)
	}
	var focus *markdown.Span
	if v.focusedLink >= 0 && v.focusedLink < len(v.links) {
		focus = &v.links[v.focusedLink]
	}
	DrawLines(s, startX+2, startY+2, contentWidth, lines[v.scrollOffset:end], v.theme, v.match.Positions, focus)

	if v.scrollOffset > 0 || len(lines) > v.visibleLines {
		scrollStyle := dialogStyle.Foreground(v.theme.Dimmed)
		scrollInfo := fmt.Sprintf("[%d-%d/%d]", v.scrollOffset+1, end, len(lines))
		drawText(s, startX+dialogWidth-len(scrollInfo)-2, startY+dialogHeight-1, scrollStyle, scrollInfo)
	}
}

func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	if !v.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		v.Hide()
	case tcell.KeyDown:
		v.scrollDown(1)
	case tcell.KeyUp:
		v.scrollUp(1)
	case tcell.KeyCtrlF, tcell.KeyPgDn:
		v.scrollDown(v.visibleLines)
	case tcell.KeyCtrlB, tcell.KeyPgUp:
		v.scrollUp(v.visibleLines)
	case tcell.KeyTab:
		v.focusLink(1)
	case tcell.KeyBacktab:
		v.focusLink(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			v.Hide()
		case 'j':
			v.scrollDown(1)
		case 'k':
			v.scrollUp(1)
		case 'g':
			// Go to top
			v.scrollOffset = 0
		case 'G':
			v.scrollOffset = v.maxScroll()
		}
	}

	return true // Consume all other keys when visible
}

// wrap returns the text wrapped to width, reusing the previous wrap when the
// width is unchanged
func (v *Viewer) wrap(width int) []Line {
	if v.lines == nil || v.linesWidth != width {
		v.lines = WrapFormatted(v.text, width)
		v.linesWidth = width
	}
	return v.lines
}

func (v *Viewer) maxScroll() int {
	maxScroll := len(v.lines) - v.visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	return maxScroll
}

func (v *Viewer) clampScroll() {
	if v.scrollOffset > v.maxScroll() {
		v.scrollOffset = v.maxScroll()
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

func (v *Viewer) scrollUp(n int) {
	v.scrollOffset -= n
	v.clampScroll()
}

func (v *Viewer) scrollDown(n int) {
	v.scrollOffset += n
	v.clampScroll()
}

// focusLink moves link focus by delta, wrapping around
func (v *Viewer) focusLink(delta int) {
	if len(v.links) == 0 {
		return
	}
	if v.focusedLink < 0 {
		if delta > 0 {
			v.focusedLink = 0
		} else {
			v.focusedLink = len(v.links) - 1
		}
	} else {
		v.focusedLink = (v.focusedLink + delta + len(v.links)) % len(v.links)
	}
	v.scrollTo(v.links[v.focusedLink].Start)
}

// scrollTo scrolls so the line holding text position pos is visible. It
// needs a previous Draw to know the wrap width.
func (v *Viewer) scrollTo(pos int) {
	for i, line := range v.lines {
		if len(line) == 0 || line[len(line)-1].Pos < pos {
			continue
		}
		if i < v.scrollOffset {
			v.scrollOffset = i
		} else if i >= v.scrollOffset+v.visibleLines {
			v.scrollOffset = i - v.visibleLines + 1
		}
		return
	}
}
