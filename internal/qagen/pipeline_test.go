package qagen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/qgen/internal/llm"
)

func validEnvelopeJSON() string {
	return `{
		"topic": "Go concurrency",
		"context": [],
		"difficulty": "medium",
		"question_types": ["mcq", "short"],
		"questions": [
			{
				"id": "q1",
				"type": "mcq",
				"text": "Which statement starts a goroutine?",
				"difficulty": "medium",
				"is_generic": true,
				"options": [
					{"option": "go f()", "is_correct": true, "explanation": "The go statement."},
					{"option": "run f()", "is_correct": false},
					{"option": "spawn f()", "is_correct": false},
					{"option": "async f()", "is_correct": false}
				],
				"answer": "go f()"
			},
			{
				"id": "q2",
				"type": "short",
				"text": "What does a nil channel receive do?",
				"difficulty": "medium",
				"is_generic": false,
				"answer": "It blocks forever."
			}
		]
	}`
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEnvelopeJSON()})
	p := New(mock, DefaultConfig())

	result, err := p.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Topic != "Go concurrency" {
		t.Errorf("unexpected topic: %q", result.Topic)
	}
	if result.TotalQuestions != 2 {
		t.Errorf("total = %d, want 2", result.TotalQuestions)
	}
	if result.GenericCount != 1 || result.PracticalCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", result.GenericCount, result.PracticalCount)
	}
	if result.TotalQuestions != len(result.Questions) {
		t.Error("total does not match question count")
	}
	if result.Elapsed < 0 {
		t.Errorf("negative elapsed time: %v", result.Elapsed)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_RepairedWithoutRemediation(t *testing.T) {
	// Fenced, bare keys, trailing commas. Textual repair handles all of
	// it locally; no second provider call is made.
	text := "Here you go!\n```json\n" + `{
		questions: [
			{id: "q1", text: "What is a mutex?", answer: "A lock.",},
		],
	}` + "\n```"

	mock := llm.NewMockProvider(llm.MockResponse{Text: text})
	p := New(mock, DefaultConfig())

	result, err := p.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
	if result.Questions[0].Type != TypeShort {
		t.Errorf("expected short inferred, got %q", result.Questions[0].Type)
	}
}

func TestGenerate_RemediationAfterMalformed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "I'm sorry, I can't produce JSON today."},
		llm.MockResponse{Text: validEnvelopeJSON()},
	)
	p := New(mock, DefaultConfig())

	result, err := p.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
	if result.TotalQuestions != 2 {
		t.Errorf("total = %d, want 2", result.TotalQuestions)
	}

	remPrompt := mock.Calls[1].Prompt
	if !strings.Contains(remPrompt, "could not be used") {
		t.Error("remediation prompt missing failure framing")
	}
	if !strings.Contains(remPrompt, "I'm sorry") {
		t.Error("remediation prompt missing the rejected fragment")
	}
	if !strings.Contains(remPrompt, "Go concurrency") {
		t.Error("remediation prompt missing the restated request")
	}
}

func TestGenerate_RemediationAfterSchemaViolation(t *testing.T) {
	// Valid JSON, invalid declared type. Normalization passes it through
	// and the schema rejects it, which still earns one remediation.
	bad := `{"questions": [{"id": "q1", "type": "riddle", "text": "Q?"}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: bad},
		llm.MockResponse{Text: validEnvelopeJSON()},
	)
	p := New(mock, DefaultConfig())

	_, err := p.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_RemediationBounded(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "garbage one"},
		llm.MockResponse{Text: "garbage two"},
		llm.MockResponse{Text: validEnvelopeJSON()}, // must never be reached
	)
	p := New(mock, DefaultConfig())

	_, err := p.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected terminal error after failed remediation")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected exactly 2 provider calls, got %d", mock.CallCount())
	}
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Errorf("expected *MalformedOutputError, got %T", err)
	}
}

func TestGenerate_ProviderErrorNoRemediation(t *testing.T) {
	rateLimit := &llm.ErrRateLimit{RetryAfter: 30 * time.Second}
	mock := llm.NewMockProvider(llm.MockResponse{Err: rateLimit})
	p := New(mock, DefaultConfig())

	_, err := p.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected provider error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected *llm.ErrRateLimit, got %T", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_RemediationProviderError(t *testing.T) {
	unavailable := &llm.ErrProviderUnavailable{Err: errors.New("503")}
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "not json at all"},
		llm.MockResponse{Err: unavailable},
	)
	p := New(mock, DefaultConfig())

	_, err := p.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var pu *llm.ErrProviderUnavailable
	if !errors.As(err, &pu) {
		t.Errorf("expected provider error preserved, got %T", err)
	}
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Errorf("expected original parse failure preserved, got %v", err)
	}
}

func TestGenerate_Cancellation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})
	p := New(mock, DefaultConfig())

	_, err := p.Generate(context.Background(), testRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no remediation after cancellation, got %d calls", mock.CallCount())
	}
}

func TestGenerate_QuantityGuarantee(t *testing.T) {
	// Three records delivered for five requested: two placeholders.
	text := `{"questions": [
		{"text": "Q1", "answer": "A1"},
		{"text": "Q2", "answer": "A2"},
		{"text": "Q3", "answer": "A3"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Text: text})
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.NumQuestions = 5

	result, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalQuestions != 5 {
		t.Fatalf("total = %d, want 5", result.TotalQuestions)
	}
	placeholders := 0
	for _, q := range result.Questions {
		if strings.Contains(q.Text, "shortfall") {
			placeholders++
		}
	}
	if placeholders != 2 {
		t.Errorf("expected 2 placeholders, got %d", placeholders)
	}
	if result.GenericCount+result.PracticalCount != result.TotalQuestions {
		t.Error("counts do not add up")
	}
}

func TestGenerate_BareListResponse(t *testing.T) {
	text := `[{"text": "What is a WaitGroup?", "answer": "A counter for goroutines."}]`
	mock := llm.NewMockProvider(llm.MockResponse{Text: text})
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.NumQuestions = 1

	result, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalQuestions != 1 {
		t.Errorf("total = %d, want 1", result.TotalQuestions)
	}
	if result.Questions[0].Type != TypeShort {
		t.Errorf("expected short inferred, got %q", result.Questions[0].Type)
	}
	if result.Topic != req.Topic {
		t.Errorf("expected topic from request, got %q", result.Topic)
	}
}

func TestGenerate_ExactlyOneCorrect(t *testing.T) {
	text := `{"questions": [{
		"text": "Pick the capital of France",
		"type": "mcq",
		"options": [
			{"option": "Paris", "is_correct": true},
			{"option": "London", "is_correct": true},
			{"option": "Berlin", "is_correct": false}
		]
	}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Text: text})
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.NumQuestions = 1

	result, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := result.Questions[0].Options
	if countCorrect(opts) != 1 {
		t.Fatalf("expected exactly one correct option, got %d", countCorrect(opts))
	}
	if !opts[0].IsCorrect {
		t.Error("expected first marked option to win")
	}
}

func TestGenerate_TokenBudget(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEnvelopeJSON()})
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.NumQuestions = 10

	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.Calls[0].MaxTokens; got != outputTokenBudget(10) {
		t.Errorf("MaxTokens = %d, want %d", got, outputTokenBudget(10))
	}
}

func TestGenerate_MaxTokensOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEnvelopeJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.9
	p := New(mock, cfg)

	if _, err := p.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want 256", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.9 {
		t.Errorf("Temperature = %f, want 0.9", mock.Calls[0].Temperature)
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.Topic = ""

	_, err := p.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEnvelopeJSON()})
	p := New(mock, DefaultConfig())

	req := testRequest()
	req.Context = []string{"Channels are typed conduits.", "WaitGroups count goroutines."}

	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "Go concurrency") {
		t.Error("prompt missing topic")
	}
	if !strings.Contains(prompt, "exactly 2") {
		t.Error("prompt missing question count")
	}
	for _, c := range req.Context {
		if !strings.Contains(prompt, c) {
			t.Errorf("prompt missing context snippet %q", c)
		}
	}
	if mock.Calls[0].System == "" {
		t.Error("expected a system prompt")
	}
}
