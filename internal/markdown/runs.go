package markdown

import "slices"

// Runs splits the text at every span boundary and returns the pieces with
// their merged display attributes. Zero-length spans style nothing and only
// contribute a boundary.
func (ft *FormattedText) Runs() []Run {
	text := []rune(ft.Text)
	if len(text) == 0 {
		return nil
	}

	bounds := make([]int, 0, 2*len(ft.Spans)+2)
	bounds = append(bounds, 0, len(text))
	for _, sp := range ft.Spans {
		bounds = append(bounds, sp.Start, sp.End)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	runs := make([]Run, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		active := ft.activeSpans(start, end)

		run := Run{
			Start:      start,
			End:        end,
			Text:       string(text[start:end]),
			Attributes: ft.opts.merge(ft.Base, active),
		}
		for _, sp := range active {
			run.Kinds = append(run.Kinds, sp.Kind)
			if sp.Kind == KindHyperlink {
				run.Link = sp.Payload
			}
		}
		runs = append(runs, run)
	}

	return runs
}

// activeSpans returns the spans covering [start, end), outermost first
func (ft *FormattedText) activeSpans(start, end int) []Span {
	var active []Span
	for _, sp := range ft.Spans {
		if sp.Start > start {
			break
		}
		if sp.Start < sp.End && sp.End >= end {
			active = append(active, sp)
		}
	}
	return active
}

// merge applies the active spans innermost first so the outermost span is
// applied last
func (o options) merge(base Attributes, active []Span) Attributes {
	attrs := base
	for i := len(active) - 1; i >= 0; i-- {
		sp := active[i]
		switch sp.Kind {
		case KindItalics:
			attrs.Italic = true
		case KindBold:
			attrs.Bold = true
		case KindStrikethrough:
			attrs.Strikethrough = true
		case KindSuperscript:
			attrs.Size = base.Size * o.superscriptScale
			attrs.BaselineOffset = base.BaselineOffset + base.Size/3
		case KindHyperlink:
			attrs.Link = sp.Payload
			attrs.Underline = true
			if o.linkColor != "" {
				attrs.Foreground = o.linkColor
			}
		}
	}
	return attrs
}
