package ui

import (
	"slices"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/csams/richmark/internal/markdown"
)

// Score threshold constants (based on raw fzf scores)
const (
	ScoreThresholdStrict     = 70 // Only high quality matches
	ScoreThresholdNormal     = 50 // Balanced (default)
	ScoreThresholdPermissive = 30 // Include marginal matches
	ScoreThresholdNone       = 0  // Accept all matches
)

// Searcher fuzzy matches queries against the plain text of formatted
// markdown
type Searcher struct {
	caseSensitive bool
	minScore      int
}

// NewSearcher creates a case insensitive searcher with the normal threshold
func NewSearcher() *Searcher {
	return &Searcher{
		minScore: ScoreThresholdNormal,
	}
}

// SetCaseSensitive toggles case sensitive matching
func (s *Searcher) SetCaseSensitive(caseSensitive bool) {
	s.caseSensitive = caseSensitive
}

// SetMinScore sets the minimum score threshold
func (s *Searcher) SetMinScore(score int) {
	s.minScore = score
}

// GetMinScore returns the current minimum score threshold
func (s *Searcher) GetMinScore() int {
	return s.minScore
}

// MatchResult contains match score and positions
type MatchResult struct {
	Score     int
	Positions []int // Rune positions, ascending
}

// Matched reports whether the result is a match
func (m MatchResult) Matched() bool {
	return m.Score >= 0
}

// Match matches query against text. An empty query matches with score 0 and
// no positions; a failed match or one under the threshold has score -1.
func (s *Searcher) Match(text, query string) MatchResult {
	if query == "" {
		return MatchResult{Score: 0, Positions: nil}
	}

	// Initialize fzf algo if needed
	algo.Init("default")

	// fzf folds the input itself but expects a lower case pattern
	pattern := query
	if !s.caseSensitive {
		pattern = strings.ToLower(query)
	}

	chars := util.ToChars([]byte(text))
	slab := util.MakeSlab(16384, 1024)
	result, positions := algo.FuzzyMatchV2(s.caseSensitive, false, true, &chars, []rune(pattern), true, slab)

	if result.Start < 0 {
		return MatchResult{Score: -1, Positions: nil}
	}
	if s.minScore > 0 && result.Score < s.minScore {
		return MatchResult{Score: -1, Positions: nil}
	}

	var matchPositions []int
	if positions != nil {
		// fzf returns positions as indices into the Chars array,
		// which already corresponds to rune positions
		matchPositions = slices.Clone(*positions)
		slices.Sort(matchPositions)
	}

	return MatchResult{Score: result.Score, Positions: matchPositions}
}

// MatchFormatted matches query against the text of ft. Positions index the
// formatted text, not the markdown source.
func (s *Searcher) MatchFormatted(ft *markdown.FormattedText, query string) MatchResult {
	if ft == nil {
		return MatchResult{Score: -1, Positions: nil}
	}
	return s.Match(ft.Text, query)
}

// SourcePositions maps match positions in the formatted text back to the
// markdown source
func SourcePositions(ft *markdown.FormattedText, result MatchResult) []int {
	mapped := make([]int, len(result.Positions))
	for i, pos := range result.Positions {
		mapped[i] = ft.PositionMap.ConvertedToOriginal(pos)
	}
	return mapped
}
