package qagen

import "strings"

// canonicalKey maps an arbitrary field-name spelling onto the canonical
// schema vocabulary for option objects. The accepted spellings form a
// closed, testable table: anything mentioning correctness or an answer
// is the correctness flag, anything explanatory is the explanation,
// anything option-like is the option text. Unrecognized keys pass
// through (stripped and folded) so no information is dropped here;
// later stages decide relevance.
func canonicalKey(raw string) string {
	k := strings.TrimSpace(raw)
	k = strings.Trim(k, `"'`+"“”‘’")
	k = strings.ToLower(strings.TrimSpace(k))

	switch {
	case strings.Contains(k, "correct") || strings.Contains(k, "answer"):
		return "is_correct"
	case strings.Contains(k, "explanation") || strings.Contains(k, "reason") || strings.Contains(k, "why"):
		return "explanation"
	case strings.Contains(k, "option"):
		return "option"
	}
	return k
}

// canonicalizeKeys rewrites every key of m through canonicalKey.
// On collision the first value encountered (in sorted key order) wins,
// keeping the result deterministic for arbitrary input maps.
func canonicalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range sortedKeys(m) {
		ck := canonicalKey(k)
		if _, exists := out[ck]; !exists {
			out[ck] = m[k]
		}
	}
	return out
}
