package qagen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// questionTextKeys is the priority order for locating a record's
// question text when the canonical "text" field is empty.
var questionTextKeys = []string{"text", "question", "question_text", "prompt"}

// optionsKeys is where a record's raw options list may live.
var optionsKeys = []string{"options", "choices"}

// normalizeRecord fills per-record defaults and rebuilds the record in
// canonical shape: text aliases resolved, difficulty defaulted from the
// request, type inferred when absent, generic flag defaulted to
// practical, options normalized, id assigned when missing. A
// model-supplied id is never overwritten. Values that remain invalid
// (e.g. an unknown declared type) pass through for the schema to reject.
func normalizeRecord(raw map[string]any, req GenerationRequest, cfg Config) map[string]any {
	text := stringField(raw, questionTextKeys...)
	answer := stringField(raw, "answer")
	code := stringField(raw, "code")

	difficulty := strings.ToLower(stringField(raw, "difficulty"))
	if difficulty == "" {
		difficulty = string(req.Difficulty)
	}

	var options []ChoiceOption
	if rawOpts := firstPresent(raw, optionsKeys...); rawOpts != nil {
		options = normalizeOptions(rawOpts, answer)
	}

	recType := strings.ToLower(stringField(raw, "type"))
	if recType == "" {
		recType = string(inferType(options, code, answer, cfg))
	}

	id := stringField(raw, "id")
	if id == "" {
		id = uuid.NewString()
	}

	out := map[string]any{
		"id":         id,
		"type":       recType,
		"text":       text,
		"difficulty": difficulty,
		"is_generic": truthy(raw["is_generic"]),
	}
	if len(options) > 0 {
		out["options"] = options
	}
	if answer != "" {
		out["answer"] = answer
	}
	if e := stringField(raw, "explanation"); e != "" {
		out["explanation"] = e
	}
	if code != "" {
		out["code"] = code
	}
	return out
}

// inferType decides a record's type from its shape when the model never
// declared one: options mean multiple choice, a code fragment means
// coding, a short answer means short-form, anything else is theory.
// The short/theory cutoff is empirical and configurable.
func inferType(options []ChoiceOption, code, answer string, cfg Config) QuestionType {
	switch {
	case len(options) > 0:
		return TypeMCQ
	case code != "":
		return TypeCoding
	case answer != "" && len(answer) <= cfg.ShortAnswerMaxLen:
		return TypeShort
	default:
		return TypeTheory
	}
}

// stringField returns the first non-empty string value among the given
// keys, stringifying JSON numbers so numeric ids survive.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
