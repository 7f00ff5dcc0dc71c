package qagen

// Config controls the behavior of the Pipeline. Passed in at
// construction and never mutated; the pipeline holds no other state
// between calls.
type Config struct {
	// ShortAnswerMaxLen is the answer length (in bytes) at or below
	// which a record with no declared type and no options or code is
	// inferred to be a short-answer record rather than theory.
	ShortAnswerMaxLen int

	// FragmentPreviewLen bounds the malformed-fragment previews carried
	// by errors and the remediation prompt.
	FragmentPreviewLen int

	// MaxTokens overrides the response token budget when positive.
	// When zero the budget is derived from the requested record count.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		ShortAnswerMaxLen:  200,
		FragmentPreviewLen: 2000,
		Temperature:        0.4,
	}
}
