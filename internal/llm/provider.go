package llm

import "context"

// Provider is the generative-service abstraction the pipeline consumes.
// One call, one prompt, one block of untrusted text back. Anything
// smarter (extraction, repair, schema validation) happens downstream,
// where the text is treated as untrusted input.
type Provider interface {
	// Generate sends a single-turn prompt to the model and returns its
	// raw text output. Implementations must honor ctx cancellation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn completion request.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, untouched. May contain prose,
	// markdown fences, or anything else the model felt like emitting.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
