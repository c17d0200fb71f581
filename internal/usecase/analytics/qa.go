package analytics

import (
	"github.com/convolens/convolens/internal/domain/entities"
)

// QAPair links a question turn with the first following turn by a
// different enabled speaker. Answer is nil when the transcript ends before
// anyone else speaks.
type QAPair struct {
	Question entities.Turn  `json:"question"`
	Answer   *entities.Turn `json:"answer"`
}

// QuestionAnswerPairs finds question turns by enabled speakers and pairs
// each with its first following different-speaker answer
func QuestionAnswerPairs(words []entities.DataPoint, opts Options) []QAPair {
	turns := entities.BuildTurns(words)
	pairs := []QAPair{}

	for qi, turn := range turns {
		if !opts.speakerEnabled(turn.Speaker) || !isQuestionTurn(turn) {
			continue
		}
		pair := QAPair{Question: turn}
		for ai := qi + 1; ai < len(turns); ai++ {
			if turns[ai].Speaker == turn.Speaker || !opts.speakerEnabled(turns[ai].Speaker) {
				continue
			}
			answer := turns[ai]
			pair.Answer = &answer
			break
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
