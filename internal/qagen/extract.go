package qagen

import "strings"

// ExtractBlock locates the most likely JSON block inside raw model text.
// Models routinely wrap their answer in prose or markdown fences; this
// strips the fences and slices from the first opening brace or bracket
// to the last closing one. Best effort: when no brace pair exists the
// stripped text is returned whole so the parser gets one final attempt.
// Returns false only when nothing parseable remains.
func ExtractBlock(raw string) (string, bool) {
	s := strings.TrimSpace(stripFences(raw))
	if s == "" {
		return "", false
	}

	start := strings.IndexAny(s, "{[")
	end := strings.LastIndexAny(s, "}]")
	if start >= 0 && end > start {
		return s[start : end+1], true
	}

	return s, true
}

// stripFences removes markdown code-fence markers.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}
