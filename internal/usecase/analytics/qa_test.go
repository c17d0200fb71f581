package analytics

import (
	"testing"
)

func TestQuestionAnswerPairs(t *testing.T) {
	stream := stream(
		[2]string{"A", "why?"},
		[2]string{"B", "because"},
		[2]string{"A", "what"},
	)

	pairs := QuestionAnswerPairs(stream, Options{EndIndex: -1})
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}

	if pairs[0].Question.Speaker != "A" {
		t.Errorf("first question speaker = %q, want A", pairs[0].Question.Speaker)
	}
	if pairs[0].Answer == nil || pairs[0].Answer.Speaker != "B" {
		t.Errorf("first answer = %+v, want B's turn", pairs[0].Answer)
	}

	// The trailing question has no following different-speaker turn
	if pairs[1].Answer != nil {
		t.Errorf("trailing question should have nil answer, got %+v", pairs[1].Answer)
	}
}

func TestQuestionAnswerPairs_SkipsSameSpeakerFollowUp(t *testing.T) {
	s := stream(
		[2]string{"A", "why?"},
	)
	// A follows up before B answers: build turns explicitly
	s = append(s, s[0])
	s[1].TurnNumber = 2
	s[1].Word = "anyone"
	s[1].DisplayWord = "anyone"
	s = append(s, s[0])
	s[2].Speaker = "B"
	s[2].TurnNumber = 3
	s[2].Word = "here"
	s[2].DisplayWord = "here"

	pairs := QuestionAnswerPairs(s, Options{EndIndex: -1})
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Answer == nil || pairs[0].Answer.Speaker != "B" {
		t.Errorf("answer should skip the asker's own follow-up: %+v", pairs[0].Answer)
	}
}

func TestQuestionAnswerPairs_DisabledSpeakers(t *testing.T) {
	s := stream(
		[2]string{"A", "why?"},
		[2]string{"B", "because"},
		[2]string{"C", "indeed"},
	)

	pairs := QuestionAnswerPairs(s, Options{EndIndex: -1, EnabledSpeakers: []string{"A", "C"}})
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	// B is disabled, so the answer comes from C
	if pairs[0].Answer == nil || pairs[0].Answer.Speaker != "C" {
		t.Errorf("answer = %+v, want C's turn", pairs[0].Answer)
	}
}

func TestQuestionAnswerPairs_EmptyIsNotNil(t *testing.T) {
	pairs := QuestionAnswerPairs(nil, Options{EndIndex: -1})
	if pairs == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}
