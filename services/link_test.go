package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenAndResolve(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)

	link, err := svc.Shorten("https://docs.oracle.com/javase/tutorial/")
	require.NoError(t, err)
	assert.Len(t, link.Code, 8)
	assert.Zero(t, link.Visits)

	resolved, err := svc.Resolve(link.Code)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.oracle.com/javase/tutorial/", resolved.URL)
	assert.Equal(t, int64(1), resolved.Visits)

	// stats read does not count a visit
	stats, err := svc.Stats(link.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Visits)
}

func TestShortenRejectsRelativeURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)

	for _, raw := range []string{"", "not a url", "/relative/path", "ftp://example.com/x"} {
		_, err := svc.Shorten(raw)
		require.Error(t, err, "url %q", raw)
		assert.True(t, IsValidation(err))
	}
}

func TestShortenRetriesOnCodeCollision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)

	original := newShortCode
	defer func() { newShortCode = original }()

	// first generated code collides with an existing link, the retry wins
	codes := []string{"aaaaaaaa", "aaaaaaaa", "bbbbbbbb"}
	newShortCode = func() string {
		code := codes[0]
		codes = codes[1:]
		return code
	}

	first, err := svc.Shorten("https://example.com/one")
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaa", first.Code)

	second, err := svc.Shorten("https://example.com/two")
	require.NoError(t, err)
	assert.Equal(t, "bbbbbbbb", second.Code)
}

func TestShortenExhaustedCollisionsIsInternalError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)

	original := newShortCode
	defer func() { newShortCode = original }()
	newShortCode = func() string { return "cccccccc" }

	_, err := svc.Shorten("https://example.com/one")
	require.NoError(t, err)

	// every retry collides; the failure must not surface as a conflict
	_, err = svc.Shorten("https://example.com/two")
	require.Error(t, err)
	assert.False(t, IsDuplicate(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestResolveUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)

	_, err := svc.Resolve("deadbeef")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
