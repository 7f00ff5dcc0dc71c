package qagen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/qgen/internal/llm"
)

// Generator produces validated question batches from a request.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

// Pipeline turns raw model output into schema-valid GenerationResults.
// It owns the full flow: prompt construction, the provider call,
// extraction, repair, normalization, validation, one bounded
// remediation retry, and the quantity guarantee. Stateless between
// calls and safe for concurrent use.
type Pipeline struct {
	provider llm.Provider
	cfg      Config
}

var _ Generator = (*Pipeline)(nil)

// New builds a Pipeline on top of the given provider.
func New(provider llm.Provider, cfg Config) *Pipeline {
	return &Pipeline{provider: provider, cfg: cfg}
}

// Generate runs the full pipeline for one request. At most two provider
// calls are made: the initial generation and, if its output is
// malformed or schema-invalid, a single remediation attempt. Provider
// errors (rate limits, outages, truncation, content filtering) are
// returned as-is so callers can react to them; a second malformed
// output is terminal.
func (p *Pipeline) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}

	start := time.Now()

	resp, err := p.provider.Generate(llm.WithPurpose(ctx, "question-gen"), p.request(req))
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	result, assembleErr := p.assemble(resp.Text, req)
	if assembleErr != nil {
		fragment, recoverable := recoverableFragment(assembleErr)
		if !recoverable {
			return nil, assembleErr
		}

		remReq := p.request(req)
		remReq.Prompt = buildRemediationPrompt(req, fragment)

		remResp, remErr := p.provider.Generate(llm.WithPurpose(ctx, "remediation"), remReq)
		if remErr != nil {
			return nil, fmt.Errorf("remediation after %w: %w", assembleErr, remErr)
		}

		result, err = p.assemble(remResp.Text, req)
		if err != nil {
			return nil, fmt.Errorf("remediation did not produce usable output: %w", err)
		}
	}

	result.Questions = enforceQuantity(req, result.Questions)
	recomputeCounts(result)
	result.Elapsed = time.Since(start)

	return result, nil
}

// request builds the provider request for the given generation request.
func (p *Pipeline) request(req GenerationRequest) llm.Request {
	maxTokens := p.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = outputTokenBudget(req.NumQuestions)
	}

	return llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(req),
		MaxTokens:   maxTokens,
		Temperature: p.cfg.Temperature,
	}
}

// assemble turns one raw model response into a validated result. The
// stages are pure, so feeding the same text twice yields the same
// result or the same error.
func (p *Pipeline) assemble(text string, req GenerationRequest) (*GenerationResult, error) {
	payload, err := parsePayload(text, p.cfg.FragmentPreviewLen)
	if err != nil {
		return nil, err
	}

	env := normalizeEnvelope(payload, req, p.cfg)
	if err := validateEnvelope(env, p.cfg.FragmentPreviewLen); err != nil {
		return nil, err
	}

	return decodeResult(env)
}

// decodeResult converts a validated envelope into the typed result.
func decodeResult(env map[string]any) (*GenerationResult, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	var result GenerationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if result.Context == nil {
		result.Context = []string{}
	}
	return &result, nil
}

// recoverableFragment reports whether err is worth one remediation
// attempt, and if so returns the rejected-output fragment to show the
// model. Provider errors and internal failures are not recoverable.
func recoverableFragment(err error) (string, bool) {
	var malformed *MalformedOutputError
	if errors.As(err, &malformed) {
		return malformed.Fragment, true
	}
	var violation *SchemaViolationError
	if errors.As(err, &violation) {
		return violation.Fragment, true
	}
	return "", false
}
