package markdown

import "strings"

// build emits the formatted text for the scanned tokens. Matched delimiters
// are dropped, unmatched ones are written as they appeared in the input.
func build(input []rune, tokens []token) *FormattedText {
	var b strings.Builder
	b.Grow(len(input))

	pm := newPositionMap(len(input))
	spans := []Span{}
	spanOf := make([]int, len(tokens))
	out := 0

	write := func(from, to int) {
		for i := from; i < to; i++ {
			b.WriteRune(input[i])
			pm.record(i, out)
			out++
		}
	}

	for i, t := range tokens {
		switch t.typ {
		case tokenText:
			write(t.start, t.end)
		case tokenLink:
			spans = append(spans, Span{Kind: KindHyperlink, Start: out, Payload: t.target})
			write(t.textStart, t.textEnd)
			spans[len(spans)-1].End = out
		case tokenDelim:
			switch {
			case t.partner < 0:
				write(t.start, t.end)
			case t.opener:
				spanOf[i] = len(spans)
				spans = append(spans, Span{Kind: t.kind, Start: out, End: out})
			default:
				spans[spanOf[t.partner]].End = out
			}
		}
	}
	pm.finish(out)

	return &FormattedText{
		Text:        b.String(),
		Spans:       spans,
		PositionMap: pm,
	}
}
