package qagen

import "testing"

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"is_correct", "is_correct"},
		{"correct", "is_correct"},
		{"isCorrect", "is_correct"},
		{"correct_answer", "is_correct"},
		{"answer", "is_correct"},
		{"explanation", "explanation"},
		{"reason", "explanation"},
		{"why", "explanation"},
		{"option", "option"},
		{"option_text", "option"},
		{`"option"`, "option"},
		{"  Option  ", "option"},
		{"“option”", "option"},
		{"label", "label"},
		{"TEXT", "text"},
	}

	for _, tt := range tests {
		if got := canonicalKey(tt.raw); got != tt.want {
			t.Errorf("canonicalKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalizeKeys_CollisionFirstWins(t *testing.T) {
	// Both keys fold to "is_correct"; sorted order puts "correct" first.
	m := map[string]any{
		"correct":    true,
		"is_correct": false,
	}
	out := canonicalizeKeys(m)
	if len(out) != 1 {
		t.Fatalf("expected 1 key, got %d", len(out))
	}
	if out["is_correct"] != true {
		t.Errorf("expected first value (true) to win, got %v", out["is_correct"])
	}
}
