package analytics

import (
	"reflect"
	"testing"

	"github.com/convolens/convolens/internal/domain/entities"
)

// stream builds a word stream from (speaker, word) pairs, one turn per
// speaker change, with synthetic half-second word slots
func stream(pairs ...[2]string) []entities.DataPoint {
	var out []entities.DataPoint
	turn := 0
	prev := ""
	for i, p := range pairs {
		if p[0] != prev {
			turn++
			prev = p[0]
		}
		out = append(out, entities.DataPoint{
			Speaker:     p[0],
			TurnNumber:  turn,
			Word:        p[1],
			DisplayWord: p[1],
			StartTime:   float64(i) * 0.5,
			EndTime:     float64(i)*0.5 + 0.5,
			Count:       1,
		})
	}
	return out
}

func counts(words []entities.DataPoint) []int {
	out := make([]int, len(words))
	for i, dp := range words {
		out[i] = dp.Count
	}
	return out
}

func TestProcessedWords_FirstWordMode(t *testing.T) {
	words := stream(
		[2]string{"A", "data"},
		[2]string{"A", "model"},
		[2]string{"A", "data"},
		[2]string{"B", "data"},
		[2]string{"A", "data"},
	)

	got := ProcessedWords(words, Options{EndIndex: -1})

	// Repeats accumulate on the first occurrence per (speaker, word); B's
	// "data" is a separate key
	want := []int{3, 1, 1, 1, 1}
	if !reflect.DeepEqual(counts(got), want) {
		t.Errorf("counts = %v, want %v", counts(got), want)
	}
}

func TestProcessedWords_LastWordMode(t *testing.T) {
	words := stream(
		[2]string{"A", "data"},
		[2]string{"A", "data"},
		[2]string{"A", "data"},
	)

	got := ProcessedWords(words, Options{EndIndex: -1, LastWordMode: true})
	if !reflect.DeepEqual(counts(got), []int{1, 1, 3}) {
		t.Errorf("counts = %v, want [1 1 3]", counts(got))
	}

	echoed := ProcessedWords(words, Options{EndIndex: -1, LastWordMode: true, EchoMode: true})
	if !reflect.DeepEqual(counts(echoed), []int{1, 2, 3}) {
		t.Errorf("echo counts = %v, want [1 2 3]", counts(echoed))
	}
}

func TestProcessedWords_PrefixMatchesScratch(t *testing.T) {
	words := stream(
		[2]string{"A", "x"}, [2]string{"A", "y"}, [2]string{"B", "x"},
		[2]string{"A", "x"}, [2]string{"B", "x"}, [2]string{"A", "y"},
		[2]string{"A", "x"}, [2]string{"B", "z"},
	)

	for _, opts := range []Options{
		{},
		{LastWordMode: true},
		{LastWordMode: true, EchoMode: true},
	} {
		for end := 0; end <= len(words); end++ {
			opts.EndIndex = end
			viaCursor := ProcessedWords(words, opts)

			full := opts
			full.EndIndex = -1
			viaTruncatedInput := ProcessedWords(words[:end], full)

			if !reflect.DeepEqual(viaCursor, viaTruncatedInput) {
				t.Fatalf("opts %+v end %d: cursor result differs from scratch result", opts, end)
			}
		}
	}
}

func TestProcessedWords_WindowFiltersBeforeCounting(t *testing.T) {
	words := stream(
		[2]string{"A", "data"}, // [0.0, 0.5)
		[2]string{"A", "data"}, // [0.5, 1.0)
		[2]string{"A", "data"}, // [1.0, 1.5)
	)

	got := ProcessedWords(words, Options{
		EndIndex: -1,
		Window:   &TimeWindow{Left: 0.6, Right: 2.0},
	})

	// The first word falls outside the window, so it contributes nothing to
	// the repeat count of the survivors
	if len(got) != 2 {
		t.Fatalf("expected 2 visible words, got %d", len(got))
	}
	if got[0].Count != 2 {
		t.Errorf("first visible count = %d, want 2", got[0].Count)
	}
}

func TestProcessedWords_StopWords(t *testing.T) {
	words := stream(
		[2]string{"A", "the"},
		[2]string{"A", "pipeline"},
		[2]string{"A", "and"},
	)

	got := ProcessedWords(words, Options{EndIndex: -1, FilterStopWords: true})
	if len(got) != 1 || got[0].Word != "pipeline" {
		t.Fatalf("stop words not filtered: %+v", got)
	}
}

func TestProcessedWords_DoesNotMutateInput(t *testing.T) {
	words := stream(
		[2]string{"A", "data"},
		[2]string{"A", "data"},
	)
	before := append([]entities.DataPoint(nil), words...)

	ProcessedWords(words, Options{EndIndex: -1})
	ProcessedWords(words, Options{EndIndex: -1, LastWordMode: true})

	if !reflect.DeepEqual(words, before) {
		t.Fatalf("input slice was mutated")
	}
}

func TestProcessedWords_EndIndexClamped(t *testing.T) {
	words := stream([2]string{"A", "x"})

	if got := ProcessedWords(words, Options{EndIndex: 99}); len(got) != 1 {
		t.Errorf("oversized end index should clamp, got %d words", len(got))
	}
	if got := ProcessedWords(words, Options{EndIndex: 0}); len(got) != 0 {
		t.Errorf("zero end index should hide everything, got %d words", len(got))
	}
}

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"À", true},
		{"pipeline", false},
		{"données", false},
	}
	for _, tt := range tests {
		if got := IsStopWord(tt.in); got != tt.want {
			t.Errorf("IsStopWord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
