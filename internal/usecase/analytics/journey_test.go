package analytics

import (
	"testing"

	"github.com/convolens/convolens/internal/domain/entities"
)

func TestWordJourney(t *testing.T) {
	// Out-of-order start times exercise the sort
	words := []entities.DataPoint{
		{Speaker: "B", TurnNumber: 2, Word: "dataset", StartTime: 5, EndTime: 5.5},
		{Speaker: "A", TurnNumber: 1, Word: "data", StartTime: 1, EndTime: 1.5},
		{Speaker: "A", TurnNumber: 3, Word: "database", StartTime: 9, EndTime: 9.5},
		{Speaker: "B", TurnNumber: 4, Word: "other", StartTime: 12, EndTime: 12.5},
	}

	journey := WordJourney(words, "data", Options{EndIndex: -1})

	if journey.Word != "data" {
		t.Errorf("journey word = %q, want data", journey.Word)
	}
	if len(journey.Occurrences) != 3 {
		t.Fatalf("expected 3 occurrences (substring match), got %d", len(journey.Occurrences))
	}

	// Sorted ascending by start time
	for i := 1; i < len(journey.Occurrences); i++ {
		if journey.Occurrences[i-1].StartTime > journey.Occurrences[i].StartTime {
			t.Fatalf("occurrences not sorted by start time")
		}
	}

	// Exactly one IsFirst, on the earliest occurrence
	firsts := 0
	for _, occ := range journey.Occurrences {
		if occ.IsFirst {
			firsts++
		}
	}
	if firsts != 1 || !journey.Occurrences[0].IsFirst {
		t.Errorf("expected exactly the earliest occurrence flagged IsFirst")
	}

	// Per-speaker firsts: A at t=1, B at t=5
	if !journey.Occurrences[0].IsFirstForSpeaker || !journey.Occurrences[1].IsFirstForSpeaker {
		t.Errorf("per-speaker first flags wrong: %+v", journey.Occurrences)
	}
	if journey.Occurrences[2].IsFirstForSpeaker {
		t.Errorf("A's second occurrence should not be flagged first-for-speaker")
	}
}

func TestWordJourney_EmptyTerm(t *testing.T) {
	words := stream([2]string{"A", "data"})

	journey := WordJourney(words, "   ", Options{EndIndex: -1})
	if len(journey.Occurrences) != 0 {
		t.Fatalf("blank term should match nothing, got %d", len(journey.Occurrences))
	}
	if journey.Occurrences == nil {
		t.Fatalf("occurrences should be an empty slice, not nil")
	}
}

func TestWordJourney_DisabledSpeakers(t *testing.T) {
	words := stream(
		[2]string{"A", "data"},
		[2]string{"B", "data"},
	)

	journey := WordJourney(words, "data", Options{EndIndex: -1, EnabledSpeakers: []string{"B"}})
	if len(journey.Occurrences) != 1 || journey.Occurrences[0].Speaker != "B" {
		t.Fatalf("disabled speakers should be excluded: %+v", journey.Occurrences)
	}
}

func TestWordJourney_CaseInsensitiveNeedle(t *testing.T) {
	words := stream([2]string{"A", "data"})

	journey := WordJourney(words, "  DATA ", Options{EndIndex: -1})
	if len(journey.Occurrences) != 1 {
		t.Fatalf("needle should be trimmed and lowercased, got %d matches", len(journey.Occurrences))
	}
}
