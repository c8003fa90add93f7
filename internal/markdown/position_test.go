package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositionMap(t *testing.T) {
	input := "**ab** c"
	result, err := FormatDefault(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Text != "ab c" {
		t.Fatalf("Expected %q, got %q", "ab c", result.Text)
	}

	pm := result.PositionMap
	// Removed markers map to the next surviving rune
	toConverted := []int{0, 0, 0, 1, 2, 2, 2, 3, 4}
	if diff := cmp.Diff(toConverted, pm.MapPositions([]int{0, 1, 2, 3, 4, 5, 6, 7, 8})); diff != "" {
		t.Errorf("OriginalToConverted mismatch (-want +got):\n%s", diff)
	}

	toOriginal := map[int]int{0: 2, 1: 3, 2: 6, 3: 7, 4: 8, 99: 8, -3: 2}
	for conv, orig := range toOriginal {
		if got := pm.ConvertedToOriginal(conv); got != orig {
			t.Errorf("ConvertedToOriginal(%d): expected %d, got %d", conv, orig, got)
		}
	}
}

func TestPositionMapLocatesWords(t *testing.T) {
	input := "Hello **wörld**, this is a [test](http://t)"
	result, err := FormatDefault(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, word := range []string{"Hello", "wörld", "this", "test"} {
		orig := len([]rune(input[:strings.Index(input, word)]))
		conv := len([]rune(result.Text[:strings.Index(result.Text, word)]))
		if got := result.PositionMap.OriginalToConverted(orig); got != conv {
			t.Errorf("%q: original %d mapped to %d, expected %d", word, orig, got, conv)
		}
		if got := result.PositionMap.ConvertedToOriginal(conv); got != orig {
			t.Errorf("%q: converted %d mapped to %d, expected %d", word, conv, got, orig)
		}
	}
}

func TestPositionMapEmpty(t *testing.T) {
	result, err := FormatDefault("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.PositionMap.OriginalToConverted(5); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := result.PositionMap.ConvertedToOriginal(0); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}
