package entities

import "testing"

func TestBuildTurns(t *testing.T) {
	words := []DataPoint{
		{Speaker: "A", TurnNumber: 1, DisplayWord: "hello", StartTime: 0, EndTime: 0.5},
		{Speaker: "A", TurnNumber: 1, DisplayWord: "there", StartTime: 0.5, EndTime: 1},
		{Speaker: "B", TurnNumber: 2, DisplayWord: "hi", StartTime: 1, EndTime: 1.5},
	}

	turns := BuildTurns(words)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}

	first := turns[0]
	if first.Content != "hello there" || first.WordCount != 2 {
		t.Errorf("unexpected first turn: %+v", first)
	}
	if first.StartTime != 0 || first.EndTime != 1 {
		t.Errorf("turn span = [%v, %v], want [0, 1]", first.StartTime, first.EndTime)
	}
	if turns[1].Speaker != "B" || turns[1].Number != 2 {
		t.Errorf("unexpected second turn: %+v", turns[1])
	}
}

func TestBuildTurns_Empty(t *testing.T) {
	if turns := BuildTurns(nil); len(turns) != 0 {
		t.Fatalf("expected no turns, got %d", len(turns))
	}
}

func TestDataPointCodes(t *testing.T) {
	dp := DataPoint{Word: "x"}

	dp.AddCode("theme")
	dp.AddCode("theme")
	dp.AddCode("other")

	if len(dp.Codes) != 2 {
		t.Fatalf("codes = %v, want deduplicated pair", dp.Codes)
	}
	if !dp.HasCode("theme") || dp.HasCode("missing") {
		t.Errorf("HasCode misbehaving: %v", dp.Codes)
	}
}

func TestWithCountCopies(t *testing.T) {
	dp := DataPoint{Word: "x", Count: 5}
	cp := dp.WithCount(1)

	if cp.Count != 1 || dp.Count != 5 {
		t.Errorf("WithCount should copy, not mutate: %d/%d", cp.Count, dp.Count)
	}
}

func TestNextPaletteColor(t *testing.T) {
	if got := NextPaletteColor(nil); got != CodePalette[0] {
		t.Errorf("first color = %q, want %q", got, CodePalette[0])
	}

	// Skips used colors regardless of registration order
	existing := []CodeEntry{
		{Name: "a", Color: CodePalette[1]},
		{Name: "b", Color: CodePalette[0]},
	}
	if got := NextPaletteColor(existing); got != CodePalette[2] {
		t.Errorf("next color = %q, want %q", got, CodePalette[2])
	}

	// Exhausted palette cycles
	var full []CodeEntry
	for _, c := range CodePalette {
		full = append(full, CodeEntry{Color: c})
	}
	if got := NextPaletteColor(full); got != CodePalette[0] {
		t.Errorf("cycled color = %q, want %q", got, CodePalette[0])
	}
}
