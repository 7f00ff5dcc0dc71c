package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_SubtopicMatch(t *testing.T) {
	src := NewStaticSource()

	snippets, err := src.Retrieve(context.Background(), "Python", []string{"data_structures"})
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], "lists")
}

func TestStaticSource_TopicOnlyReturnsAreaEntries(t *testing.T) {
	src := NewStaticSource()

	snippets, err := src.Retrieve(context.Background(), "go", nil)
	require.NoError(t, err)
	require.Len(t, snippets, 3)
}

func TestStaticSource_TopicSubstring(t *testing.T) {
	src := NewStaticSource()

	// "Go concurrency interview" contains the "go" area key.
	snippets, err := src.Retrieve(context.Background(), "Go concurrency interview", []string{"concurrency"})
	require.NoError(t, err)
	require.NotEmpty(t, snippets)
	assert.Contains(t, snippets[0], "Goroutines")
}

func TestStaticSource_UnknownTopicFallback(t *testing.T) {
	src := NewStaticSource()

	snippets, err := src.Retrieve(context.Background(), "quantum basket weaving", nil)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], "quantum basket weaving")
}

func TestStaticSource_SnippetCap(t *testing.T) {
	src := NewStaticSource()

	// "javascript" area alone has 3 entries; an unmatched subtopic list
	// falls back to all of them, capped.
	snippets, err := src.Retrieve(context.Background(), "javascript", []string{"nonexistent"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(snippets), maxSnippets)
}

func TestStaticSource_EmptyTopic(t *testing.T) {
	src := NewStaticSource()

	_, err := src.Retrieve(context.Background(), "   ", nil)
	require.Error(t, err)
}

func TestStaticSource_CancelledContext(t *testing.T) {
	src := NewStaticSource()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Retrieve(ctx, "python", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
