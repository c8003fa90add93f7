package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearcherMatch(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		query         string
		caseSensitive bool
		matched       bool
		positions     []int
	}{
		{
			name:      "Exact word",
			text:      "hello world",
			query:     "world",
			matched:   true,
			positions: []int{6, 7, 8, 9, 10},
		},
		{
			name:      "Case insensitive",
			text:      "hello world",
			query:     "WORLD",
			matched:   true,
			positions: []int{6, 7, 8, 9, 10},
		},
		{
			name:          "Case sensitive",
			text:          "hello world",
			query:         "WORLD",
			caseSensitive: true,
			matched:       false,
		},
		{
			name:    "No match",
			text:    "hello world",
			query:   "xyz",
			matched: false,
		},
		{
			name:    "Empty query",
			text:    "hello world",
			query:   "",
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSearcher()
			s.SetCaseSensitive(tt.caseSensitive)
			result := s.Match(tt.text, tt.query)
			if result.Matched() != tt.matched {
				t.Fatalf("Expected matched=%v, got score %d", tt.matched, result.Score)
			}
			if diff := cmp.Diff(tt.positions, result.Positions); diff != "" {
				t.Errorf("Positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearcherMinScore(t *testing.T) {
	s := NewSearcher()
	if s.GetMinScore() != ScoreThresholdNormal {
		t.Errorf("Expected default threshold %d, got %d", ScoreThresholdNormal, s.GetMinScore())
	}

	s.SetMinScore(10000)
	if s.Match("hello world", "world").Matched() {
		t.Error("Expected match below threshold to be rejected")
	}

	s.SetMinScore(ScoreThresholdNone)
	if !s.Match("hello world", "hlo").Matched() {
		t.Error("Expected fuzzy match without threshold")
	}
}

func TestMatchFormattedSourcePositions(t *testing.T) {
	ft := format(t, "**hello** [world](u)")
	result := NewSearcher().MatchFormatted(ft, "world")
	if !result.Matched() {
		t.Fatal("Expected a match")
	}
	if diff := cmp.Diff([]int{6, 7, 8, 9, 10}, result.Positions); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{11, 12, 13, 14, 15}, SourcePositions(ft, result)); diff != "" {
		t.Errorf("Source positions mismatch (-want +got):\n%s", diff)
	}

	if NewSearcher().MatchFormatted(nil, "x").Matched() {
		t.Error("Expected no match without text")
	}
}
