package qagen

import "testing"

func countCorrect(opts []ChoiceOption) int {
	n := 0
	for _, o := range opts {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

func TestNormalizeOptions_PlainStrings(t *testing.T) {
	raw := []any{"Paris", "London", "Berlin"}
	opts := normalizeOptions(raw, "")
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if countCorrect(opts) != 1 {
		t.Errorf("expected exactly one correct, got %d", countCorrect(opts))
	}
	if !opts[0].IsCorrect {
		t.Error("expected first option marked correct when nothing else decides")
	}
}

func TestNormalizeOptions_AnswerBreaksTie(t *testing.T) {
	raw := []any{"London", "Paris", "Berlin"}
	opts := normalizeOptions(raw, "paris")
	if !opts[1].IsCorrect {
		t.Error("expected the answer-matched option to be marked correct")
	}
	if countCorrect(opts) != 1 {
		t.Errorf("expected exactly one correct, got %d", countCorrect(opts))
	}
}

func TestNormalizeOptions_DoubleCorrectDemoted(t *testing.T) {
	raw := []any{
		map[string]any{"option": "A", "is_correct": true},
		map[string]any{"option": "B", "is_correct": true},
		map[string]any{"option": "C", "is_correct": false},
	}
	opts := normalizeOptions(raw, "")
	if !opts[0].IsCorrect {
		t.Error("expected first marked option to stay correct")
	}
	if opts[1].IsCorrect {
		t.Error("expected second marked option to be demoted")
	}
	if countCorrect(opts) != 1 {
		t.Errorf("expected exactly one correct, got %d", countCorrect(opts))
	}
}

func TestNormalizeOptions_LooseObjects(t *testing.T) {
	raw := []any{
		map[string]any{"text": "Goroutine", "correct": "yes", "reason": "Lightweight."},
		map[string]any{"label": "Thread", "isCorrect": false},
	}
	opts := normalizeOptions(raw, "")
	if opts[0].Option != "Goroutine" {
		t.Errorf("unexpected option text: %q", opts[0].Option)
	}
	if !opts[0].IsCorrect {
		t.Error("expected truthy string to mark correctness")
	}
	if opts[0].Explanation != "Lightweight." {
		t.Errorf("unexpected explanation: %q", opts[0].Explanation)
	}
	if opts[1].Option != "Thread" {
		t.Errorf("unexpected option text: %q", opts[1].Option)
	}
}

func TestNormalizeOptions_EmptyTextPlaceholder(t *testing.T) {
	raw := []any{"", map[string]any{"is_correct": false}}
	opts := normalizeOptions(raw, "")
	for i, o := range opts {
		if o.Option != placeholderOptionText {
			t.Errorf("option %d: expected placeholder, got %q", i, o.Option)
		}
	}
}

func TestNormalizeOptions_NonListInput(t *testing.T) {
	if opts := normalizeOptions("not a list", ""); opts != nil {
		t.Errorf("expected nil, got %v", opts)
	}
	if opts := normalizeOptions(nil, ""); opts != nil {
		t.Errorf("expected nil, got %v", opts)
	}
}

func TestNormalizeOptions_ScalarItems(t *testing.T) {
	raw := []any{float64(42), true}
	opts := normalizeOptions(raw, "")
	if opts[0].Option != "42" {
		t.Errorf("expected stringified number, got %q", opts[0].Option)
	}
	if opts[1].Option != "true" {
		t.Errorf("expected stringified bool, got %q", opts[1].Option)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"y", true},
		{"1", true},
		{"correct", true},
		{"false", false},
		{"no", false},
		{"", false},
		{float64(1), true},
		{float64(0), false},
		{float64(-1), true},
		{nil, false},
		{[]any{}, false},
	}

	for _, tt := range tests {
		if got := truthy(tt.v); got != tt.want {
			t.Errorf("truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
