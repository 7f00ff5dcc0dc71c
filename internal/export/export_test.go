package export

import (
	"strings"
	"testing"

	"github.com/abhisek/qgen/internal/qagen"
)

func sampleResult() *qagen.GenerationResult {
	return &qagen.GenerationResult{
		Topic:          "Go concurrency",
		Difficulty:     qagen.DifficultyMedium,
		QuestionTypes:  []qagen.QuestionType{qagen.TypeMCQ, qagen.TypeCoding},
		TotalQuestions: 2,
		GenericCount:   1,
		PracticalCount: 1,
		Questions: []qagen.QuestionRecord{
			{
				ID:         "q1",
				Type:       qagen.TypeMCQ,
				Text:       "Which statement starts a goroutine?",
				Difficulty: qagen.DifficultyMedium,
				IsGeneric:  true,
				Options: []qagen.ChoiceOption{
					{Option: "go f()", IsCorrect: true},
					{Option: "run f()"},
					{Option: "spawn f()"},
				},
				Answer: "go f()",
			},
			{
				ID:          "q2",
				Type:        qagen.TypeCoding,
				Text:        "What does this program print?",
				Difficulty:  qagen.DifficultyMedium,
				Code:        "func main() {\n\tfmt.Println(1 << 3)\n}",
				Answer:      "8",
				Explanation: "1 shifted left by 3 is 8.",
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	doc := Markdown(sampleResult())

	for _, want := range []string{
		"# Interview Questions: Go concurrency",
		"**Questions:** 2 (1 generic, 1 practical)",
		"## Question 1",
		"- [x] A. go f()",
		"- [ ] B. run f()",
		"### Answer",
		"```\nfunc main() {",
		"### Explanation",
		"[GENERIC]",
		"[PRACTICAL]",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestText(t *testing.T) {
	doc := Text(sampleResult())

	for _, want := range []string{
		"INTERVIEW QUESTIONS: GO CONCURRENCY",
		"QUESTION 1 [mcq, medium]:",
		"A. go f() (correct)",
		"B. run f()",
		"ANSWER 2:\n8",
		"EXPLANATION:\n1 shifted left by 3 is 8.",
		strings.Repeat("-", 80),
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("text missing %q", want)
		}
	}
}

func TestMarkdown_NoOptionsNoAnswer(t *testing.T) {
	result := &qagen.GenerationResult{
		Topic:          "Databases",
		Difficulty:     qagen.DifficultyEasy,
		TotalQuestions: 1,
		PracticalCount: 1,
		Questions: []qagen.QuestionRecord{
			{ID: "q1", Type: qagen.TypeTheory, Text: "Explain ACID.", Difficulty: qagen.DifficultyEasy},
		},
	}

	doc := Markdown(result)
	if strings.Contains(doc, "### Answer") {
		t.Error("answer section rendered for a record without one")
	}
	if strings.Contains(doc, "- [") {
		t.Error("options rendered for a record without any")
	}
}

func TestOptionLetter(t *testing.T) {
	if got := optionLetter(0); got != "A" {
		t.Errorf("optionLetter(0) = %q", got)
	}
	if got := optionLetter(25); got != "Z" {
		t.Errorf("optionLetter(25) = %q", got)
	}
	if got := optionLetter(26); got != "27" {
		t.Errorf("optionLetter(26) = %q", got)
	}
}
