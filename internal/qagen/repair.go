package qagen

import (
	"regexp"
	"strings"
)

var (
	// bareKeyRe matches unquoted object keys, e.g. `{question: "..."}`.
	bareKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

	// trailingCommaRe matches a comma immediately before a closing
	// brace or bracket.
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
)

// smartQuotes maps typographic quote characters onto their plain
// ASCII equivalents.
var smartQuotes = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

// Repair applies a bounded set of textual fixes to a block that failed
// strict JSON decoding: residual fences, typographic quotes, unquoted
// keys, and trailing commas. It only removes noise and never invents
// data, so a block missing actual content still fails the second parse.
func Repair(s string) string {
	s = strings.TrimSpace(stripFences(s))
	s = smartQuotes.Replace(s)
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	return s
}
