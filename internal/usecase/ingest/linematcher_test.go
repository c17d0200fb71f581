package ingest

import (
	"reflect"
	"testing"

	"github.com/convolens/convolens/internal/domain/entities"
)

func TestParseTranscriptText_ColonFormat(t *testing.T) {
	text := "Alice: hello there\nBob: hi Alice\nAlice: how are you"

	result := ParseTranscriptText(text, "")

	if len(result.Turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(result.Turns))
	}
	if result.DominantFormat != FormatColon {
		t.Errorf("dominant format = %q, want %q", result.DominantFormat, FormatColon)
	}
	if result.HasTimestamps {
		t.Errorf("colon format should carry no timestamps")
	}
	if !reflect.DeepEqual(result.Speakers, []string{"Alice", "Bob"}) {
		t.Errorf("speakers = %v, want [Alice Bob]", result.Speakers)
	}
	if result.Turns[1].Speaker != "Bob" || result.Turns[1].Content != "hi Alice" {
		t.Errorf("unexpected second turn: %+v", result.Turns[1])
	}
}

func TestParseTranscriptText_SpeakerTabTime(t *testing.T) {
	text := "Alice\t0:05\thello\nBob\t0:12\thi there"

	result := ParseTranscriptText(text, "")

	if result.DominantFormat != FormatSpeakerTabTime {
		t.Fatalf("dominant format = %q, want %q", result.DominantFormat, FormatSpeakerTabTime)
	}
	if !result.HasTimestamps {
		t.Fatalf("expected timestamps")
	}
	if got := *result.Turns[0].StartTime; got != 5 {
		t.Errorf("first turn start = %v, want 5", got)
	}
	if got := *result.Turns[1].StartTime; got != 12 {
		t.Errorf("second turn start = %v, want 12", got)
	}
}

func TestParseTranscriptText_TimeTabSpeaker(t *testing.T) {
	text := "0:05\tAlice\thello\n0:12\tBob\thi there"

	result := ParseTranscriptText(text, "")

	if result.DominantFormat != FormatTimeTabSpeaker {
		t.Fatalf("dominant format = %q, want %q", result.DominantFormat, FormatTimeTabSpeaker)
	}
	if result.Turns[0].Speaker != "Alice" {
		t.Errorf("speaker = %q, want Alice", result.Turns[0].Speaker)
	}
}

func TestParseTranscriptText_BracketFormats(t *testing.T) {
	// Bracket time with embedded speaker pair
	withSpeaker := ParseTranscriptText("[0:05] Alice: hello", "")
	if withSpeaker.DominantFormat != FormatBracketSpeaker {
		t.Errorf("dominant = %q, want %q", withSpeaker.DominantFormat, FormatBracketSpeaker)
	}
	if withSpeaker.Turns[0].Speaker != "Alice" {
		t.Errorf("speaker = %q, want Alice", withSpeaker.Turns[0].Speaker)
	}

	// Bracket time without a speaker
	plain := ParseTranscriptText("[0:05] just narration here", "")
	if plain.DominantFormat != FormatBracketPlain {
		t.Errorf("dominant = %q, want %q", plain.DominantFormat, FormatBracketPlain)
	}
	if plain.Turns[0].Speaker != DefaultSpeaker {
		t.Errorf("speaker = %q, want %q", plain.Turns[0].Speaker, DefaultSpeaker)
	}
}

func TestParseTranscriptText_ContinuationLines(t *testing.T) {
	text := "Alice: first part\nand this continues the thought\nBob: reply"

	result := ParseTranscriptText(text, "")

	if len(result.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(result.Turns))
	}
	if result.Turns[0].Content != "first part and this continues the thought" {
		t.Errorf("continuation not joined: %q", result.Turns[0].Content)
	}
	if result.ContinuationLines != 1 {
		t.Errorf("continuation lines = %d, want 1", result.ContinuationLines)
	}
	if result.TotalLines != 3 {
		t.Errorf("total lines = %d, want 3", result.TotalLines)
	}
}

func TestParseTranscriptText_LeadingContinuationOpensDefaultTurn(t *testing.T) {
	result := ParseTranscriptText("just some text with no speaker", "")

	if len(result.Turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(result.Turns))
	}
	if result.Turns[0].Speaker != DefaultSpeaker {
		t.Errorf("speaker = %q, want %q", result.Turns[0].Speaker, DefaultSpeaker)
	}
	if result.DominantFormat != FormatPlain {
		t.Errorf("dominant = %q, want %q", result.DominantFormat, FormatPlain)
	}
}

func TestParseTranscriptText_MixedFormat(t *testing.T) {
	text := "Alice: colon line\nBob\ttab line"

	result := ParseTranscriptText(text, "")

	if result.DominantFormat != FormatMixed {
		t.Errorf("dominant = %q, want %q", result.DominantFormat, FormatMixed)
	}
}

func TestParseTranscriptText_ForcedFormat(t *testing.T) {
	// A line that the colon rule would claim, parsed with the cascade pinned
	// to tab, becomes a continuation
	result := ParseTranscriptText("Alice: hello", FormatTab)

	if result.ContinuationLines != 1 {
		t.Errorf("expected the colon line to degrade to a continuation")
	}
}

func TestParseTranscriptText_WallClockRollover(t *testing.T) {
	text := "[11:58 PM] Alice: getting late\n[11:59 PM] Bob: one more thing\n[12:01 AM] Alice: past midnight"

	result := ParseTranscriptText(text, "")

	if result.DominantFormat != FormatClock {
		t.Fatalf("dominant = %q, want %q", result.DominantFormat, FormatClock)
	}
	want := []float64{0, 60, 180}
	for i, w := range want {
		if got := *result.Turns[i].StartTime; got != w {
			t.Errorf("turn %d start = %v, want %v", i, got, w)
		}
	}
}

func TestMergeSameSpeakerTurns(t *testing.T) {
	s0, s1, e1 := 0.0, 5.0, 9.0
	turns := []entities.ParsedTurn{
		{Speaker: "Alice", Content: "one", StartTime: &s0},
		{Speaker: "Alice", Content: "two", StartTime: &s1, EndTime: &e1},
		{Speaker: "Bob", Content: "three"},
	}

	merged := MergeSameSpeakerTurns(turns)
	if len(merged) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(merged))
	}
	if merged[0].Content != "one two" {
		t.Errorf("content = %q, want \"one two\"", merged[0].Content)
	}
	if *merged[0].StartTime != 0 {
		t.Errorf("merged turn should keep the first start time")
	}
	if merged[0].EndTime == nil || *merged[0].EndTime != 9 {
		t.Errorf("merged turn should take the later end time")
	}

	// Idempotence
	again := MergeSameSpeakerTurns(merged)
	if !reflect.DeepEqual(again, merged) {
		t.Errorf("merge is not idempotent: %v vs %v", again, merged)
	}
}

func TestPlausibleSpeaker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Alice", true},
		{"Dr. Jane Smith", true},
		{"Speaker 1", true},
		{"", false},
		{"   ", false},
		{"[Alice]", false},
		{"(aside)", false},
		{"https://example.com", false},
		{"alice@example.com", false},
		{"www.example.com", false},
		{"12:34", false},
		{"1,234", false},
		{"one two three four five", false},
		{"this is a really long speaker name that cannot be real here", false},
	}

	for _, tt := range tests {
		if got := PlausibleSpeaker(tt.in); got != tt.want {
			t.Errorf("PlausibleSpeaker(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
