package markdown

// Kind identifies the inline markup a span was produced from
type Kind int

const (
	KindItalics Kind = iota
	KindBold
	KindStrikethrough
	KindSuperscript
	KindHyperlink
)

func (k Kind) String() string {
	switch k {
	case KindItalics:
		return "italics"
	case KindBold:
		return "bold"
	case KindStrikethrough:
		return "strikethrough"
	case KindSuperscript:
		return "superscript"
	case KindHyperlink:
		return "hyperlink"
	}
	return "unknown"
}

// Span is a styled range of the formatted text
type Span struct {
	Kind    Kind
	Start   int    // Rune position in formatted text
	End     int    // Rune position in formatted text
	Payload string // Link target, only set for KindHyperlink
}

// Len returns the number of runes the span covers
func (s Span) Len() int {
	return s.End - s.Start
}

// FormattedText is the result of formatting a string: the text with all
// recognized markers removed and the spans that style it.
type FormattedText struct {
	Text        string
	Spans       []Span // Ordered by Start, enclosing spans first
	Base        Attributes
	PositionMap *PositionMap

	opts options
}

// Run is a maximal range of formatted text over which the set of active
// spans does not change.
type Run struct {
	Start      int
	End        int
	Text       string
	Kinds      []Kind // Outermost first
	Link       string
	Attributes Attributes
}

// Has reports whether k is active over the run
func (r Run) Has(k Kind) bool {
	for _, kind := range r.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}
