package qagen

import (
	"fmt"
	"time"
)

// QuestionType classifies how a generated record is answered.
type QuestionType string

const (
	TypeMCQ    QuestionType = "mcq"    // multiple choice with one correct option
	TypeCoding QuestionType = "coding" // write or analyze code
	TypeShort  QuestionType = "short"  // answerable in a sentence or two
	TypeTheory QuestionType = "theory" // long-form conceptual answer
)

// QuestionTypes lists every valid type, in display order.
var QuestionTypes = []QuestionType{TypeMCQ, TypeCoding, TypeShort, TypeTheory}

// ParseQuestionType returns the QuestionType for s, or false if unknown.
func ParseQuestionType(s string) (QuestionType, bool) {
	for _, t := range QuestionTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Difficulty is the requested difficulty tag for generated records.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every valid difficulty.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty returns the Difficulty for s, or false if unknown.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// GenerationRequest carries everything needed to generate one batch of
// question records. Immutable once constructed; owned by the caller.
type GenerationRequest struct {
	// Topic is the subject to generate questions about.
	Topic string

	// Context is an ordered list of free-text strings (curriculum
	// excerpts, enrichment snippets). Treated opaquely; may be empty.
	Context []string

	// NumQuestions is the exact number of records the caller expects back.
	NumQuestions int

	// GenericPercentage is the share (0-100) of records that should be
	// generic/theoretical rather than practical.
	GenericPercentage int

	// Difficulty applies to every record unless the model tags one itself.
	Difficulty Difficulty

	// QuestionTypes restricts generation to these types. Must be non-empty.
	QuestionTypes []QuestionType

	// IncludeAnswers asks the model for worked answers on every record.
	IncludeAnswers bool
}

// Validate checks the request against its documented constraints.
func (r GenerationRequest) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if r.NumQuestions < 1 {
		return fmt.Errorf("number of questions must be positive, got %d", r.NumQuestions)
	}
	if r.GenericPercentage < 0 || r.GenericPercentage > 100 {
		return fmt.Errorf("generic percentage must be 0-100, got %d", r.GenericPercentage)
	}
	if _, ok := ParseDifficulty(string(r.Difficulty)); !ok {
		return fmt.Errorf("unknown difficulty %q", r.Difficulty)
	}
	if len(r.QuestionTypes) == 0 {
		return fmt.Errorf("at least one question type is required")
	}
	for _, t := range r.QuestionTypes {
		if _, ok := ParseQuestionType(string(t)); !ok {
			return fmt.Errorf("unknown question type %q", t)
		}
	}
	return nil
}

// ChoiceOption is one option of a multiple-choice record. After
// normalization the text is never empty and exactly one option per
// record carries IsCorrect.
type ChoiceOption struct {
	Option      string `json:"option"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// QuestionRecord is one generated question/answer unit.
type QuestionRecord struct {
	// ID uniquely identifies the record. Assigned by the pipeline when
	// the model omits it; a model-supplied id is never overwritten.
	ID string `json:"id"`

	Type       QuestionType `json:"type"`
	Text       string       `json:"text"`
	Difficulty Difficulty   `json:"difficulty"`

	// IsGeneric marks conceptual records; false means practical.
	IsGeneric bool `json:"is_generic"`

	// Options is populated only for mcq records.
	Options []ChoiceOption `json:"options,omitempty"`

	Answer      string `json:"answer,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Code        string `json:"code,omitempty"`
}

// GenerationResult is the validated aggregate returned to callers.
// Downstream consumers read it; nothing mutates it after return.
type GenerationResult struct {
	Topic         string         `json:"topic"`
	Context       []string       `json:"context"`
	Difficulty    Difficulty     `json:"difficulty"`
	QuestionTypes []QuestionType `json:"question_types"`

	// Derived counts, always recomputed from Questions:
	// TotalQuestions == len(Questions) == GenericCount + PracticalCount.
	TotalQuestions int `json:"total_questions"`
	GenericCount   int `json:"generic_count"`
	PracticalCount int `json:"practical_count"`

	// Elapsed is the wall-clock duration of the generation call,
	// including any remediation round-trip.
	Elapsed time.Duration `json:"generation_time"`

	Questions []QuestionRecord `json:"questions"`
}
