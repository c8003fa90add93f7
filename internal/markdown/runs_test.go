package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRuns(t *testing.T) {
	result, err := FormatDefault("a **b _c_** d")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	base := DefaultAttributes()
	bold := base
	bold.Bold = true
	boldItalic := bold
	boldItalic.Italic = true

	expected := []Run{
		{Start: 0, End: 2, Text: "a ", Attributes: base},
		{Start: 2, End: 4, Text: "b ", Kinds: []Kind{KindBold}, Attributes: bold},
		{Start: 4, End: 5, Text: "c", Kinds: []Kind{KindBold, KindItalics}, Attributes: boldItalic},
		{Start: 5, End: 7, Text: " d", Attributes: base},
	}
	if diff := cmp.Diff(expected, result.Runs(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Runs mismatch (-want +got):\n%s", diff)
	}
}

func TestRunsEmptyText(t *testing.T) {
	result, err := FormatDefault("****")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if runs := result.Runs(); len(runs) != 0 {
		t.Errorf("Expected no runs, got %v", runs)
	}
}

func TestRunsHyperlink(t *testing.T) {
	formatter, err := NewFormatter(WithLinkColor("#7aa2f7"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	result, err := formatter.FormatDefault("see [docs](https://d.io)")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	runs := result.Runs()
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	link := runs[1]
	if link.Text != "docs" || link.Link != "https://d.io" || !link.Has(KindHyperlink) {
		t.Errorf("Unexpected link run %+v", link)
	}
	if !link.Attributes.Underline || link.Attributes.Foreground != "#7aa2f7" || link.Attributes.Link != "https://d.io" {
		t.Errorf("Unexpected link attributes %+v", link.Attributes)
	}
	if runs[0].Has(KindHyperlink) || runs[0].Attributes.Underline {
		t.Errorf("Expected plain first run, got %+v", runs[0])
	}
}

func TestRunsSuperscript(t *testing.T) {
	formatter, err := NewFormatter(WithSuperscriptScale(0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	result, err := formatter.Format("x^2^", Attributes{Family: "system", Size: 12})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	runs := result.Runs()
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if got := runs[1].Attributes; got.Size != 6 || got.BaselineOffset != 4 {
		t.Errorf("Expected size 6 and baseline 4, got size %v and baseline %v", got.Size, got.BaselineOffset)
	}
	if got := runs[0].Attributes; got.Size != 12 || got.BaselineOffset != 0 {
		t.Errorf("Expected base size for first run, got %+v", got)
	}
}

func TestMergeOutermostWins(t *testing.T) {
	formatter, err := NewFormatter()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	active := []Span{
		{Kind: KindHyperlink, Payload: "outer"},
		{Kind: KindBold},
		{Kind: KindHyperlink, Payload: "inner"},
	}
	got := formatter.Merge(DefaultAttributes(), active)
	if got.Link != "outer" {
		t.Errorf("Expected outer link to win, got %q", got.Link)
	}
	if !got.Bold || !got.Underline {
		t.Errorf("Expected traits to combine, got %+v", got)
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := DefaultAttributes()
	got := defaultFormatter.Merge(base, []Span{{Kind: KindItalics}, {Kind: KindStrikethrough}})
	if base != DefaultAttributes() {
		t.Errorf("Base attributes were modified: %+v", base)
	}
	if !got.Italic || !got.Strikethrough {
		t.Errorf("Expected italic strikethrough, got %+v", got)
	}
}
