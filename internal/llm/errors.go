package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit. Truncated JSON never parses, so callers
// should treat this as a budget problem, not a transient one.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrContentFiltered indicates the provider refused to answer on
// content-safety grounds. Not retryable: resending the same prompt
// produces the same refusal.
type ErrContentFiltered struct {
	Err error
}

func (e *ErrContentFiltered) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM response blocked by content filter: %v", e.Err)
	}
	return "LLM response blocked by content filter"
}

func (e *ErrContentFiltered) Unwrap() error { return e.Err }
