package qagen

// envelopeSchemaName identifies the compiled result schema.
const envelopeSchemaName = "generation-result"

// envelopeSchema is the fixed JSON Schema every normalized envelope must
// satisfy before it becomes a GenerationResult. Derived counts and
// timing are excluded: they are computed by the pipeline afterwards and
// never trusted from model output.
var envelopeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topic": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"context": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"question_types": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "string",
				"enum": []any{"mcq", "coding", "short", "theory"},
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    recordSchema,
		},
	},
	"required":             []any{"topic", "context", "difficulty", "question_types", "questions"},
	"additionalProperties": false,
}

var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"mcq", "coding", "short", "theory"},
		},
		"text": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"is_generic": map[string]any{
			"type": "boolean",
		},
		"options": map[string]any{
			"type":  "array",
			"items": optionSchema,
		},
		"answer":      map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
		"code":        map[string]any{"type": "string"},
	},
	"required":             []any{"id", "type", "text", "difficulty", "is_generic"},
	"additionalProperties": false,
}

var optionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"option": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"is_correct": map[string]any{
			"type": "boolean",
		},
		"explanation": map[string]any{"type": "string"},
	},
	"required":             []any{"option", "is_correct"},
	"additionalProperties": false,
}
