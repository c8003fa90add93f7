package markdown

import (
	"strings"
	"unicode"
)

const escapable = `\*_~^[]()`

type tokenType int

const (
	tokenText tokenType = iota
	tokenDelim
	tokenLink
)

// token covers the input runes [start, end)
type token struct {
	typ   tokenType
	start int
	end   int

	// Delimiters
	kind    Kind
	opener  bool
	partner int // Index of the matching delimiter, -1 while unmatched

	// Links
	textStart int
	textEnd   int
	target    string
}

type openDelim struct {
	token  int
	marker rune
	kind   Kind
}

// targetBounds describes the only link targets that can end at a given ')'.
// A target starting at from is valid when first <= from <= last.
type targetBounds struct {
	first int
	last  int
}

// scanner splits the input into tokens in a single left to right pass.
// Delimiter tokens left without a partner at the end are literal text.
type scanner struct {
	input  []rune
	tokens []token
	stack  []openDelim

	// Stack indexes of the open delimiters of each marker, ascending
	byMarker map[rune][]int
	// Number of open delimiters of each kind
	openKinds map[Kind]int

	// Built on the first link candidate. nextParen[i] is the position of the
	// first ')' at or after i, len(input) if there is none.
	nextParen []int
	targets   map[int]targetBounds
}

func scan(input []rune) []token {
	s := &scanner{
		input:     input,
		byMarker:  make(map[rune][]int),
		openKinds: make(map[Kind]int),
	}

	for i := 0; i < len(input); {
		r := input[i]
		switch {
		case r == '\\' && i+1 < len(input) && strings.ContainsRune(escapable, input[i+1]):
			// The backslash is dropped
			s.literal(i+1, i+2)
			i += 2
		case r == '[':
			if end, ok := s.link(i); ok {
				i = end
			} else {
				s.literal(i, i+1)
				i++
			}
		case isMarker(r):
			i = s.run(i)
		default:
			s.literal(i, i+1)
			i++
		}
	}

	return s.tokens
}

func isMarker(r rune) bool {
	switch r {
	case '*', '_', '~', '^':
		return true
	}
	return false
}

// literal adds input[start:end] as text, extending the previous text token
// when they touch
func (s *scanner) literal(start, end int) {
	if n := len(s.tokens); n > 0 {
		last := &s.tokens[n-1]
		if last.typ == tokenText && last.end == start {
			last.end = end
			return
		}
	}
	s.tokens = append(s.tokens, token{typ: tokenText, start: start, end: end, partner: -1})
}

// link recognizes [text](target) starting at open. The text is taken
// literally, so links never nest and never contain other markup.
func (s *scanner) link(open int) (int, bool) {
	in := s.input

	closeBracket := -1
	for j := open + 1; j < len(in); j++ {
		if in[j] == '[' {
			return 0, false
		}
		if in[j] == ']' {
			closeBracket = j
			break
		}
	}
	if closeBracket < 0 || closeBracket+1 >= len(in) || in[closeBracket+1] != '(' {
		return 0, false
	}

	from := closeBracket + 2
	closeParen := s.parenAt(from)
	if closeParen >= len(in) {
		return 0, false
	}
	b := s.bounds(closeParen)
	if from < b.first || from > b.last {
		return 0, false
	}
	target := strings.TrimSpace(string(in[from:closeParen]))

	s.tokens = append(s.tokens, token{
		typ:       tokenLink,
		start:     open,
		end:       closeParen + 1,
		partner:   -1,
		textStart: open + 1,
		textEnd:   closeBracket,
		target:    target,
	})
	return closeParen + 1, true
}

// parenAt returns the position of the first ')' at or after from
func (s *scanner) parenAt(from int) int {
	if s.nextParen == nil {
		in := s.input
		s.nextParen = make([]int, len(in)+1)
		s.nextParen[len(in)] = len(in)
		for i := len(in) - 1; i >= 0; i-- {
			if in[i] == ')' {
				s.nextParen[i] = i
			} else {
				s.nextParen[i] = s.nextParen[i+1]
			}
		}
	}
	return s.nextParen[from]
}

// bounds finds the target starts that are valid for closeParen: the target
// must be one run of non-space runes, optionally padded with spaces. The walk
// back stops at the previous ')', so every rune is visited at most once.
func (s *scanner) bounds(closeParen int) targetBounds {
	if b, ok := s.targets[closeParen]; ok {
		return b
	}

	in := s.input
	inTarget := func(i int, space bool) bool {
		return i >= 0 && in[i] != ')' && unicode.IsSpace(in[i]) == space
	}

	i := closeParen - 1
	for inTarget(i, true) {
		i--
	}
	last := i
	for inTarget(i, false) {
		i--
	}
	for inTarget(i, true) {
		i--
	}
	b := targetBounds{first: i + 1, last: last}

	if s.targets == nil {
		s.targets = make(map[int]targetBounds)
	}
	s.targets[closeParen] = b
	return b
}

// run handles a run of identical marker runes starting at start and returns
// the position after it.
//
// A run may close spans when it follows a non-space rune and may open spans
// when a non-space rune follows it. Closing always happens first and always
// takes the innermost open span of the same marker; any span opened after
// that one is abandoned and its delimiter becomes literal text.
func (s *scanner) run(start int) int {
	in := s.input
	marker := in[start]
	end := start
	for end < len(in) && in[end] == marker {
		end++
	}

	prev, next := runeBefore(in, start), runeAt(in, end)
	if marker == '_' && isWordRune(prev) && isWordRune(next) {
		s.literal(start, end)
		return end
	}
	canClose := !unicode.IsSpace(prev)
	canOpen := !unicode.IsSpace(next)

	pos := start
	if canClose {
		for pos < end {
			idx := s.innermost(marker)
			if idx < 0 {
				break
			}
			w := delimWidth(s.stack[idx].kind)
			if end-pos < w {
				break
			}
			s.close(idx, pos, pos+w)
			pos += w
		}
	}

	// Opener and closer with nothing between them and nothing after
	if kind, w := emptyPair(marker); !canOpen && end-pos == 2*w && !s.blocked(kind) {
		s.open(marker, kind, pos, pos+w)
		s.close(len(s.stack)-1, pos+w, end)
		return end
	}

	for canOpen && pos < end {
		kind, w := openerFor(marker, end-pos)
		if w == 0 || s.blocked(kind) {
			break
		}
		s.open(marker, kind, pos, pos+w)
		pos += w
	}

	if pos < end {
		s.literal(pos, end)
	}
	return end
}

func (s *scanner) open(marker rune, kind Kind, start, end int) {
	s.tokens = append(s.tokens, token{
		typ:     tokenDelim,
		start:   start,
		end:     end,
		kind:    kind,
		opener:  true,
		partner: -1,
	})
	s.byMarker[marker] = append(s.byMarker[marker], len(s.stack))
	s.openKinds[kind]++
	s.stack = append(s.stack, openDelim{
		token:  len(s.tokens) - 1,
		marker: marker,
		kind:   kind,
	})
}

// close matches the opener at stack index idx and drops every opener above it
func (s *scanner) close(idx, start, end int) {
	o := s.stack[idx]
	s.tokens = append(s.tokens, token{
		typ:     tokenDelim,
		start:   start,
		end:     end,
		kind:    o.kind,
		partner: o.token,
	})
	s.tokens[o.token].partner = len(s.tokens) - 1

	for i := len(s.stack) - 1; i >= idx; i-- {
		d := s.stack[i]
		idxs := s.byMarker[d.marker]
		s.byMarker[d.marker] = idxs[:len(idxs)-1]
		s.openKinds[d.kind]--
	}
	s.stack = s.stack[:idx]
}

func (s *scanner) innermost(marker rune) int {
	idxs := s.byMarker[marker]
	if len(idxs) == 0 {
		return -1
	}
	return idxs[len(idxs)-1]
}

// blocked reports whether opening kind would nest it inside itself.
// Strikethrough and superscript never nest.
func (s *scanner) blocked(kind Kind) bool {
	if kind != KindStrikethrough && kind != KindSuperscript {
		return false
	}
	return s.openKinds[kind] > 0
}

func delimWidth(kind Kind) int {
	switch kind {
	case KindBold, KindStrikethrough:
		return 2
	}
	return 1
}

// openerFor picks the span a marker opens given the runes left in its run
func openerFor(marker rune, remaining int) (Kind, int) {
	switch marker {
	case '*', '_':
		if remaining >= 2 {
			return KindBold, 2
		}
		return KindItalics, 1
	case '~':
		if remaining >= 2 {
			return KindStrikethrough, 2
		}
	case '^':
		return KindSuperscript, 1
	}
	return 0, 0
}

func emptyPair(marker rune) (Kind, int) {
	switch marker {
	case '*', '_':
		return KindBold, 2
	case '~':
		return KindStrikethrough, 2
	}
	return KindSuperscript, 1
}

func runeBefore(in []rune, i int) rune {
	if i <= 0 {
		return ' '
	}
	return in[i-1]
}

func runeAt(in []rune, i int) rune {
	if i >= len(in) {
		return ' '
	}
	return in[i]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
