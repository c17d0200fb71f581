package ingest

import "testing"

func TestParseAssemblyAIExport_Utterances(t *testing.T) {
	payload := []byte(`{
		"utterances": [
			{"speaker": "A", "words": [
				{"text": "Hello,", "start": 1000, "end": 1400},
				{"text": "world", "start": 1400, "end": 1900}
			]},
			{"speaker": "B", "words": [
				{"text": "Hi", "start": 2000, "end": 2300}
			]}
		]
	}`)

	words, speakers, err := ParseAssemblyAIExport(payload)
	if err != nil {
		t.Fatalf("ParseAssemblyAIExport failed: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}

	if words[0].Speaker != "Speaker A" || words[2].Speaker != "Speaker B" {
		t.Errorf("speakers not labeled: %q, %q", words[0].Speaker, words[2].Speaker)
	}
	if words[0].Word != "hello" || words[0].DisplayWord != "Hello," {
		t.Errorf("word not normalized: %+v", words[0])
	}
	// Export times are milliseconds
	if words[0].StartTime != 1.0 || words[0].EndTime != 1.4 {
		t.Errorf("times = [%v, %v], want [1.0, 1.4]", words[0].StartTime, words[0].EndTime)
	}
	if words[0].TurnNumber != 1 || words[2].TurnNumber != 2 {
		t.Errorf("utterances should map to turns: %d, %d", words[0].TurnNumber, words[2].TurnNumber)
	}
	if len(speakers) != 2 {
		t.Errorf("speakers = %v, want 2 entries", speakers)
	}
}

func TestParseAssemblyAIExport_FlatWordsCutOnSpeakerChange(t *testing.T) {
	payload := []byte(`{
		"words": [
			{"text": "one", "start": 0, "end": 400, "speaker": "A"},
			{"text": "two", "start": 400, "end": 800, "speaker": "A"},
			{"text": "three", "start": 900, "end": 1300, "speaker": "B"},
			{"text": "four", "start": 1400, "end": 1800, "speaker": "A"}
		]
	}`)

	words, _, err := ParseAssemblyAIExport(payload)
	if err != nil {
		t.Fatalf("ParseAssemblyAIExport failed: %v", err)
	}

	wantTurns := []int{1, 1, 2, 3}
	for i, w := range wantTurns {
		if words[i].TurnNumber != w {
			t.Errorf("word %d turn = %d, want %d", i, words[i].TurnNumber, w)
		}
	}
}

func TestParseAssemblyAIExport_Invalid(t *testing.T) {
	if _, _, err := ParseAssemblyAIExport([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, _, err := ParseAssemblyAIExport([]byte("{}")); err == nil {
		t.Fatalf("expected error for export with no words")
	}
}
