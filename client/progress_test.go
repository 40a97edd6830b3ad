package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ProgressStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.json")
	return OpenProgressStore(path), path
}

var javaBasicsLessons = []string{"introduction", "variables", "operators", "control-flow", "methods"}

func TestCompletionPercentage(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", javaBasicsLessons))

	assert.Equal(t, 0, store.CompletionPercentage("java-basics"))

	// one of five lessons done -> 20
	require.NoError(t, store.MarkComplete("java-basics", "introduction"))
	assert.Equal(t, 20, store.CompletionPercentage("java-basics"))

	for _, id := range javaBasicsLessons {
		require.NoError(t, store.MarkComplete("java-basics", id))
	}
	assert.Equal(t, 100, store.CompletionPercentage("java-basics"))
}

func TestCompletionPercentageRounds(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetSubtopics("oop-concepts", []string{"a", "b", "c"}))

	require.NoError(t, store.MarkComplete("oop-concepts", "a"))
	assert.Equal(t, 33, store.CompletionPercentage("oop-concepts"))

	require.NoError(t, store.MarkComplete("oop-concepts", "b"))
	assert.Equal(t, 67, store.CompletionPercentage("oop-concepts"))
}

func TestCompletionIgnoresUnknownSubtopics(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", []string{"introduction", "variables"}))

	// completed ids outside the topic's lesson list do not count
	require.NoError(t, store.MarkComplete("java-basics", "not-a-lesson"))
	assert.Equal(t, 0, store.CompletionPercentage("java-basics"))
}

func TestMarkCompleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", javaBasicsLessons))

	require.NoError(t, store.MarkComplete("java-basics", "introduction"))
	require.NoError(t, store.MarkComplete("java-basics", "introduction"))

	assert.Equal(t, 1, store.CompletedCount("java-basics"))
	assert.Equal(t, 20, store.CompletionPercentage("java-basics"))
}

func TestMarkIncomplete(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", javaBasicsLessons))

	require.NoError(t, store.MarkComplete("java-basics", "introduction"))
	require.True(t, store.IsComplete("java-basics", "introduction"))

	require.NoError(t, store.MarkIncomplete("java-basics", "introduction"))
	assert.False(t, store.IsComplete("java-basics", "introduction"))
	assert.Equal(t, 0, store.CompletionPercentage("java-basics"))
}

func TestRoundTripPersistence(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", javaBasicsLessons))
	require.NoError(t, store.MarkComplete("java-basics", "introduction"))
	require.NoError(t, store.MarkComplete("java-basics", "variables"))

	reloaded := OpenProgressStore(path)
	require.NoError(t, reloaded.SetSubtopics("java-basics", javaBasicsLessons))

	assert.True(t, reloaded.IsComplete("java-basics", "introduction"))
	assert.True(t, reloaded.IsComplete("java-basics", "variables"))
	assert.Equal(t, 2, reloaded.CompletedCount("java-basics"))
	assert.Equal(t, 40, reloaded.CompletionPercentage("java-basics"))
}

func TestReloadedStoreKeepsPercentages(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SetSubtopics("java-basics", javaBasicsLessons))
	require.NoError(t, store.MarkComplete("java-basics", "introduction"))
	require.NoError(t, store.MarkComplete("java-basics", "variables"))
	require.Equal(t, 40, store.CompletionPercentage("java-basics"))

	// a fresh store serves the persisted percentage even before the
	// lesson list is registered again
	reloaded := OpenProgressStore(path)
	assert.Equal(t, 40, reloaded.CompletionPercentage("java-basics"))
	assert.Equal(t, 2, reloaded.CompletedCount("java-basics"))

	// registering the list switches back to live computation
	require.NoError(t, reloaded.SetSubtopics("java-basics", javaBasicsLessons))
	assert.Equal(t, 40, reloaded.CompletionPercentage("java-basics"))
	require.NoError(t, reloaded.MarkComplete("java-basics", "operators"))
	assert.Equal(t, 60, reloaded.CompletionPercentage("java-basics"))
}

func TestMalformedPayloadLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := OpenProgressStore(path)
	assert.Equal(t, 0, store.CompletedCount("java-basics"))
	assert.Equal(t, 0, store.CompletionPercentage("java-basics"))
}

func TestMissingFileLoadsEmpty(t *testing.T) {
	store := OpenProgressStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Equal(t, 0, store.CompletedCount("java-basics"))
}
