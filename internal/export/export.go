// Package export renders a finished generation result as a document.
// Renderers rely on the pipeline's guarantees (consistent counts,
// exactly one correct option per multiple-choice record) and do no
// validation of their own.
package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/qgen/internal/qagen"
)

// Markdown renders the result as a markdown document with a summary
// header and one section per question.
func Markdown(result *qagen.GenerationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Interview Questions: %s\n\n", result.Topic)
	fmt.Fprintf(&b, "**Difficulty:** %s  \n", result.Difficulty)
	fmt.Fprintf(&b, "**Questions:** %d (%d generic, %d practical)\n\n",
		result.TotalQuestions, result.GenericCount, result.PracticalCount)
	b.WriteString("---\n\n")

	for i, q := range result.Questions {
		fmt.Fprintf(&b, "## Question %d\n\n", i+1)
		fmt.Fprintf(&b, "%s\n\n", q.Text)
		fmt.Fprintf(&b, "**Type:** %s | **Difficulty:** %s | %s\n\n",
			q.Type, q.Difficulty, genericLabel(q.IsGeneric))

		if q.Code != "" {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimRight(q.Code, "\n"))
		}

		for j, opt := range q.Options {
			marker := " "
			if opt.IsCorrect {
				marker = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s. %s\n", marker, optionLetter(j), opt.Option)
		}
		if len(q.Options) > 0 {
			b.WriteString("\n")
		}

		if q.Answer != "" {
			fmt.Fprintf(&b, "### Answer\n\n%s\n\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Fprintf(&b, "### Explanation\n\n%s\n\n", q.Explanation)
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}

// Text renders the result as a plain-text document.
func Text(result *qagen.GenerationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "INTERVIEW QUESTIONS: %s\n", strings.ToUpper(result.Topic))
	fmt.Fprintf(&b, "Difficulty: %s | Total: %d (%d generic, %d practical)\n\n",
		result.Difficulty, result.TotalQuestions, result.GenericCount, result.PracticalCount)

	for i, q := range result.Questions {
		fmt.Fprintf(&b, "QUESTION %d [%s, %s]:\n%s\n\n", i+1, q.Type, q.Difficulty, q.Text)

		if q.Code != "" {
			fmt.Fprintf(&b, "%s\n\n", strings.TrimRight(q.Code, "\n"))
		}

		for j, opt := range q.Options {
			correct := ""
			if opt.IsCorrect {
				correct = " (correct)"
			}
			fmt.Fprintf(&b, "  %s. %s%s\n", optionLetter(j), opt.Option, correct)
		}
		if len(q.Options) > 0 {
			b.WriteString("\n")
		}

		if q.Answer != "" {
			fmt.Fprintf(&b, "ANSWER %d:\n%s\n\n", i+1, q.Answer)
		}
		if q.Explanation != "" {
			fmt.Fprintf(&b, "EXPLANATION:\n%s\n\n", q.Explanation)
		}

		b.WriteString(strings.Repeat("-", 80) + "\n\n")
	}

	return b.String()
}

func genericLabel(isGeneric bool) string {
	if isGeneric {
		return "[GENERIC]"
	}
	return "[PRACTICAL]"
}

// optionLetter labels options A..Z, then wraps numerically for absurdly
// long lists.
func optionLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
