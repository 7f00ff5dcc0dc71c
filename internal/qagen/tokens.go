package qagen

// Response token budgeting. A question plus a worked answer costs
// roughly 180 tokens; the margin absorbs formatting overhead. Clamped
// so tiny requests still get a usable window and large ones stay under
// common provider limits.
const (
	tokensPerRecord   = 180
	tokenSafetyMargin = 1.2
	minOutputTokens   = 1000
	maxOutputTokens   = 8000
)

// outputTokenBudget sizes the response window for the requested count.
func outputTokenBudget(numQuestions int) int {
	budget := int(float64(tokensPerRecord*numQuestions) * tokenSafetyMargin)
	if budget < minOutputTokens {
		return minOutputTokens
	}
	if budget > maxOutputTokens {
		return maxOutputTokens
	}
	return budget
}
