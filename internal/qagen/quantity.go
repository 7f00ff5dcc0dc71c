package qagen

import (
	"fmt"

	"github.com/google/uuid"
)

// enforceQuantity pads records with shortfall placeholders until the
// requested count is met. Over-delivery is kept as-is; extra valid
// questions are never thrown away.
func enforceQuantity(req GenerationRequest, records []QuestionRecord) []QuestionRecord {
	for len(records) < req.NumQuestions {
		records = append(records, shortfallRecord(req, len(records)+1))
	}
	return records
}

// shortfallRecord builds a clearly-marked synthetic record standing in
// for one the service failed to deliver.
func shortfallRecord(req GenerationRequest, position int) QuestionRecord {
	return QuestionRecord{
		ID:         uuid.NewString(),
		Type:       TypeShort,
		Text:       fmt.Sprintf("[Generation shortfall] Question %d on %q was not generated. Replace this placeholder manually.", position, req.Topic),
		Difficulty: req.Difficulty,
		IsGeneric:  true,
		Answer:     "",
	}
}

// recomputeCounts derives the aggregate counters from the final record
// list. Counts reported by the model are never trusted.
func recomputeCounts(result *GenerationResult) {
	generic := 0
	for _, q := range result.Questions {
		if q.IsGeneric {
			generic++
		}
	}
	result.TotalQuestions = len(result.Questions)
	result.GenericCount = generic
	result.PracticalCount = result.TotalQuestions - generic
}
