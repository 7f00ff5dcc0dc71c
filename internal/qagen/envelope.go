package qagen

// normalizeEnvelope rebuilds the outer envelope in canonical shape
// before validation. A service that forgets the wrapper and returns a
// bare record list gets a synthesized envelope (topic and difficulty
// from the request). Top-level fields outside the canonical set, such
// as counters the model computed itself, are dropped rather than
// trusted. Every record that is an object runs through normalizeRecord;
// anything else is kept as-is for the schema to reject.
func normalizeEnvelope(v any, req GenerationRequest, cfg Config) map[string]any {
	var raw map[string]any

	switch t := v.(type) {
	case map[string]any:
		raw = t
	case []any:
		raw = map[string]any{"questions": t}
	default:
		// Scalar payload. Shape it anyway; validation rejects it.
		raw = map[string]any{}
	}

	env := map[string]any{
		"topic":          req.Topic,
		"context":        stringList(raw["context"]),
		"difficulty":     string(req.Difficulty),
		"question_types": stringList(raw["question_types"]),
	}
	if s, ok := raw["topic"].(string); ok && s != "" {
		env["topic"] = s
	}
	if s, ok := raw["difficulty"].(string); ok && s != "" {
		env["difficulty"] = s
	}
	if len(env["question_types"].([]string)) == 0 {
		types := make([]string, len(req.QuestionTypes))
		for i, t := range req.QuestionTypes {
			types[i] = string(t)
		}
		env["question_types"] = types
	}

	records, _ := raw["questions"].([]any)
	normalized := make([]any, len(records))
	for i, r := range records {
		if m, ok := r.(map[string]any); ok {
			normalized[i] = normalizeRecord(m, req, cfg)
		} else {
			normalized[i] = r
		}
	}
	env["questions"] = normalized

	return env
}

// stringList coerces a raw value to a non-nil []string, dropping
// non-string elements.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
