package qagen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert interview question generator.

Rules:
- Generate exactly the requested number of questions, no more and no less.
- Every question must be one of the allowed types. Do not mix in other types.
- Distribute the allowed types evenly across the questions.
- For mcq questions, provide exactly 4 options with exactly one marked correct. Distractors should reflect common mistakes, not random values.
- For coding questions, put runnable code in the "code" field, not in the question text.
- For short questions, the answer fits in one or two sentences.
- For theory questions, the answer is a detailed multi-paragraph explanation.
- Respect the requested split between generic (conceptual) and practical (real-world) questions via the "is_generic" field.
- Output ONLY a valid JSON object matching the structure shown. No markdown fences, no commentary before or after.
- Escape all special characters inside strings properly and place commas between array elements correctly.`

// typeInstructions spells out the per-type contract, mirroring the
// record schema so the model and the validator agree.
var typeInstructions = map[QuestionType]string{
	TypeMCQ:    `set "options" to exactly 4 objects like {"option": "...", "is_correct": false, "explanation": "..."} with exactly one is_correct=true`,
	TypeCoding: `set "code" to the complete code the question refers to; the answer explains or fixes it`,
	TypeShort:  `set "answer" to a concise 1-2 sentence answer`,
	TypeTheory: `set "answer" to a detailed 3-5 paragraph answer`,
}

// buildUserMessage constructs the generation prompt from the request.
func buildUserMessage(req GenerationRequest) string {
	genericCount := req.NumQuestions * req.GenericPercentage / 100
	practicalCount := req.NumQuestions - genericCount

	typeNames := make([]string, len(req.QuestionTypes))
	for i, t := range req.QuestionTypes {
		typeNames[i] = string(t)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d interview questions.\n\n", req.NumQuestions)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Allowed types: %s\n", strings.Join(typeNames, ", "))
	fmt.Fprintf(&b, "Generic (conceptual) questions: %d\n", genericCount)
	fmt.Fprintf(&b, "Practical (real-world) questions: %d\n", practicalCount)
	if req.IncludeAnswers {
		b.WriteString("Answers: include a detailed answer for every question\n")
	} else {
		b.WriteString("Answers: questions only, leave answers empty\n")
	}

	b.WriteString("\nType requirements:\n")
	for _, t := range req.QuestionTypes {
		fmt.Fprintf(&b, "- %s: %s\n", t, typeInstructions[t])
	}

	b.WriteString("\nContext for accuracy:\n")
	b.WriteString(buildContext(req.Context))

	fmt.Fprintf(&b, "\n\nReturn a JSON object with this exact structure:\n%s\n", envelopeExample(req))
	fmt.Fprintf(&b, "\nThe \"questions\" array must contain exactly %d entries.", req.NumQuestions)

	return b.String()
}

// buildContext formats the opaque context strings for the prompt.
func buildContext(context []string) string {
	if len(context) == 0 {
		return "Use your general knowledge."
	}

	var b strings.Builder
	for i, c := range context {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return strings.TrimRight(b.String(), "\n")
}

// envelopeExample renders the expected output shape with the request's
// own values filled in, which keeps weaker models from inventing field
// names.
func envelopeExample(req GenerationRequest) string {
	typeNames := make([]string, len(req.QuestionTypes))
	for i, t := range req.QuestionTypes {
		typeNames[i] = fmt.Sprintf("%q", string(t))
	}

	return fmt.Sprintf(`{
  "topic": %q,
  "context": [],
  "difficulty": %q,
  "question_types": [%s],
  "questions": [
    {
      "id": "q1",
      "type": %q,
      "text": "<question text>",
      "difficulty": %q,
      "is_generic": false,
      "options": [],
      "answer": "<answer text>",
      "explanation": "<why the answer is correct>",
      "code": ""
    }
  ]
}`, req.Topic, req.Difficulty, strings.Join(typeNames, ", "),
		req.QuestionTypes[0], req.Difficulty)
}

// buildRemediationPrompt asks the model to fix its previous output. The
// fragment is already truncated to the configured preview length; the
// full contract is restated because a fragment alone under-specifies
// the envelope.
func buildRemediationPrompt(req GenerationRequest, fragment string) string {
	var b strings.Builder

	b.WriteString("Your previous response could not be used: it was either not valid JSON or did not match the required structure.\n\n")
	b.WriteString("Rejected output (truncated):\n")
	b.WriteString(fragment)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Produce a corrected response for the same request:\n\n%s", buildUserMessage(req))

	return b.String()
}
