package ingest

import "testing"

func TestReadCSV_NormalizesHeadersAndPadsRows(t *testing.T) {
	table, err := ReadCSV("Speaker, Content ,Start\nAlice,hello,0:05\nBob,hi")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	for _, col := range []string{"speaker", "content", "start"} {
		if !table.HasColumn(col) {
			t.Errorf("missing normalized column %q", col)
		}
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	// Short row padded, not rejected
	if table.Rows[1]["start"] != "" {
		t.Errorf("short row should pad missing columns with empty strings")
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestParseTabularTranscript(t *testing.T) {
	table := mustTable(t, "speaker,content,start,end\nAlice,hello there,0:05,0:08\n,no speaker here,,\nBob,,0:10,\nBob,unparsable times,zzz,qqq")

	turns, err := ParseTabularTranscript(table)
	if err != nil {
		t.Fatalf("ParseTabularTranscript failed: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns (empty content skipped), got %d", len(turns))
	}

	if turns[0].Speaker != "Alice" || *turns[0].StartTime != 5 || *turns[0].EndTime != 8 {
		t.Errorf("unexpected first turn: %+v", turns[0])
	}
	if turns[1].Speaker != DefaultSpeaker {
		t.Errorf("missing speaker should default to %q, got %q", DefaultSpeaker, turns[1].Speaker)
	}
	// Unparsable times degrade to nil rather than failing the row
	if turns[2].StartTime != nil || turns[2].EndTime != nil {
		t.Errorf("unparsable times should be nil: %+v", turns[2])
	}
}

func TestParseTabularTranscript_NeedsContent(t *testing.T) {
	table := mustTable(t, "speaker,text\nAlice,hello")
	if _, err := ParseTabularTranscript(table); err == nil {
		t.Fatalf("expected error without a content column")
	}
}
