package ingest

import "testing"

func TestParseSubtitles(t *testing.T) {
	srt := `1
00:00:01,500 --> 00:00:03,000
Hello there,
this spans two lines.

2
00:00:04.000 --> 00:00:05.250
Second cue.
`

	turns, err := ParseSubtitles(srt)
	if err != nil {
		t.Fatalf("ParseSubtitles failed: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(turns))
	}

	if turns[0].Content != "Hello there, this spans two lines." {
		t.Errorf("multi-line cue not joined: %q", turns[0].Content)
	}
	if *turns[0].StartTime != 1.5 || *turns[0].EndTime != 3 {
		t.Errorf("cue 1 times = [%v, %v], want [1.5, 3]", *turns[0].StartTime, *turns[0].EndTime)
	}
	// Period millisecond separator accepted
	if *turns[1].StartTime != 4 || *turns[1].EndTime != 5.25 {
		t.Errorf("cue 2 times = [%v, %v], want [4, 5.25]", *turns[1].StartTime, *turns[1].EndTime)
	}
	if turns[0].Speaker != DefaultSpeaker {
		t.Errorf("subtitle cues get the synthetic speaker, got %q", turns[0].Speaker)
	}
}

func TestParseSubtitles_NoCues(t *testing.T) {
	if _, err := ParseSubtitles("not a subtitle file at all"); err == nil {
		t.Fatalf("expected error when no cues are found")
	}
}
