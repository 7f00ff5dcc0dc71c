// Package enrich supplies topic context snippets that callers append to
// a generation request. Sources are pluggable; the built-in StaticSource
// works offline from a small curated knowledge base.
package enrich

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Source retrieves context snippets for a topic. Implementations may
// hit external systems, so the context must be honored.
type Source interface {
	Retrieve(ctx context.Context, topic string, subtopics []string) ([]string, error)
}

// maxSnippets bounds how many snippets a retrieval returns, keeping the
// prompt contribution small.
const maxSnippets = 3

// StaticSource serves snippets from a fixed in-memory knowledge base
// keyed by topic area and subtopic. Safe for concurrent use.
type StaticSource struct {
	kb map[string]map[string]string
}

// NewStaticSource builds a StaticSource over the built-in knowledge base.
func NewStaticSource() *StaticSource {
	return &StaticSource{kb: builtinKB}
}

// Retrieve matches topic against the knowledge areas by substring in
// either direction, then picks entries matching the given subtopics.
// With no subtopic hit it returns every entry of the matched areas, and
// with no topic hit at all a single generic snippet, so callers always
// get something to anchor the prompt.
func (s *StaticSource) Retrieve(ctx context.Context, topic string, subtopics []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topicLower := strings.ToLower(strings.TrimSpace(topic))
	if topicLower == "" {
		return nil, fmt.Errorf("topic is required")
	}

	var snippets []string
	for _, area := range sortedAreaKeys(s.kb) {
		if !strings.Contains(topicLower, area) && !strings.Contains(area, topicLower) {
			continue
		}
		entries := s.kb[area]
		matched := false
		for _, sub := range subtopics {
			if text, ok := entries[strings.ToLower(strings.TrimSpace(sub))]; ok {
				snippets = append(snippets, text)
				matched = true
			}
		}
		if !matched {
			for _, k := range sortedEntryKeys(entries) {
				snippets = append(snippets, entries[k])
			}
		}
	}

	if len(snippets) == 0 {
		snippets = []string{fmt.Sprintf("Information about %s", topic)}
	}
	if len(snippets) > maxSnippets {
		snippets = snippets[:maxSnippets]
	}
	return snippets, nil
}

func sortedAreaKeys(kb map[string]map[string]string) []string {
	keys := make([]string, 0, len(kb))
	for k := range kb {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEntryKeys(entries map[string]string) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// builtinKB covers the interview topics the tool is most often used
// for. Keys are lowercase; lookups fold case before matching.
var builtinKB = map[string]map[string]string{
	"python": {
		"fundamentals":    "Python is a high-level, interpreted programming language known for readability. Key concepts: variables, data types, functions, classes, modules.",
		"data_structures": "Core Python data structures: lists (ordered, mutable), tuples (ordered, immutable), dictionaries (key-value pairs), sets (unique items).",
		"best_practices":  "Follow PEP 8 style guide, use virtual environments, write docstrings, implement error handling with try-except blocks.",
	},
	"go": {
		"fundamentals": "Go is a statically typed, compiled language with garbage collection. Key concepts: packages, interfaces, structs, explicit error returns.",
		"concurrency":  "Goroutines are lightweight threads managed by the runtime. Channels provide typed communication; sync primitives cover shared state.",
		"tooling":      "The go command covers builds, tests, formatting and module management. gofmt output is the canonical style.",
	},
	"data_science": {
		"numpy":            "NumPy provides ndarray for numerical computing, efficient operations on arrays, linear algebra, random number generation.",
		"pandas":           "Pandas provides DataFrame and Series for data manipulation, cleaning, analysis, grouping, merging operations.",
		"machine_learning": "ML process: data collection, preprocessing, feature engineering, model training, evaluation, hyperparameter tuning.",
	},
	"web_development": {
		"django":   "Django is an MVC framework for building robust web applications with ORM, admin panel, authentication, URL routing.",
		"fastapi":  "FastAPI is a modern Python web framework for building APIs with automatic documentation, async support, type hints.",
		"rest_api": "REST principles: stateless, use HTTP methods (GET, POST, PUT, DELETE), resource-oriented design, status codes.",
	},
	"javascript": {
		"fundamentals": "JS is a dynamic language: variables (var, let, const), functions, objects, arrays, events, DOM manipulation.",
		"async":        "Asynchronous patterns: callbacks, promises, async/await for handling operations that take time.",
		"frameworks":   "Popular frameworks: React (component-based), Vue (progressive), Angular (full-featured), Next.js (React meta-framework).",
	},
	"system_design": {
		"scalability":  "Design principles: horizontal scaling (add more servers), caching, database optimization, load balancing.",
		"databases":    "SQL (ACID properties) vs NoSQL (flexibility), indexing, normalization, sharding strategies.",
		"architecture": "MVC, microservices, serverless, event-driven architectures, design patterns.",
	},
}
