package qagen

import (
	"fmt"
	"sort"
	"strings"
)

// placeholderOptionText replaces option text that is empty after every
// fallback, so renderers never see a blank choice.
const placeholderOptionText = "Option"

// optionTextKeys is the priority order for locating an option's display
// text inside a canonicalized option object.
var optionTextKeys = []string{"option", "text", "label", "value", "name", "choice"}

// normalizeOptions coerces a raw options value (a list of plain
// strings, a list of loosely-shaped objects, or anything else) into a
// uniform []ChoiceOption with exactly one entry marked correct.
// answer, when non-empty, breaks ties for records where the model never
// marked a correct option. Returns nil when raw holds no options.
func normalizeOptions(raw any, answer string) []ChoiceOption {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil
	}

	opts := make([]ChoiceOption, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			opts = append(opts, ChoiceOption{Option: strings.TrimSpace(v)})
		case map[string]any:
			opts = append(opts, normalizeOptionObject(v))
		default:
			opts = append(opts, ChoiceOption{Option: strings.TrimSpace(fmt.Sprintf("%v", v))})
		}
	}

	for i := range opts {
		if opts[i].Option == "" {
			opts[i].Option = placeholderOptionText
		}
	}

	enforceSingleCorrect(opts, answer)
	return opts
}

func normalizeOptionObject(raw map[string]any) ChoiceOption {
	m := canonicalizeKeys(raw)

	opt := ChoiceOption{
		Option:    optionText(m),
		IsCorrect: truthy(m["is_correct"]),
	}
	if e, ok := m["explanation"].(string); ok {
		opt.Explanation = strings.TrimSpace(e)
	}
	return opt
}

// optionText picks the display text from a canonicalized option object:
// the priority keys first, then any non-empty string value in sorted
// key order. Empty result falls back to the placeholder later.
func optionText(m map[string]any) string {
	for _, k := range optionTextKeys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	for _, k := range sortedKeys(m) {
		if k == "is_correct" {
			continue
		}
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// enforceSingleCorrect guarantees exactly one correct option in a
// non-empty list: extra marks are cleared keeping the first; when none
// is marked, the option matching answer wins, else the first one.
func enforceSingleCorrect(opts []ChoiceOption, answer string) {
	if len(opts) == 0 {
		return
	}

	marked := false
	for i := range opts {
		if opts[i].IsCorrect {
			if marked {
				opts[i].IsCorrect = false
			}
			marked = true
		}
	}
	if marked {
		return
	}

	if a := strings.TrimSpace(answer); a != "" {
		for i := range opts {
			if strings.EqualFold(strings.TrimSpace(opts[i].Option), a) {
				opts[i].IsCorrect = true
				return
			}
		}
	}

	opts[0].IsCorrect = true
}

// truthy coerces the correctness flag from whatever representation the
// model chose: a real boolean, a truthy string, or a nonzero number.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "y", "correct":
			return true
		}
		return false
	case float64:
		return t != 0
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
