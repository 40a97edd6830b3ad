package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"byteforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers with canned documents so the wrappers can be exercised
// without a running database.
func fakeAPI(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("PUT /topics/java-basics", func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		writeJSON(w, http.StatusOK, models.Topic{
			Slug:  "java-basics",
			Title: patch["title"].(string),
		})
	})
	mux.HandleFunc("PUT /categories/java-fundamentals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Category{Slug: "java-fundamentals", Title: "Renamed"})
	})
	mux.HandleFunc("DELETE /categories/java-fundamentals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":         "Category deleted successfully!",
			"deletedCategory": models.Category{Slug: "java-fundamentals"},
		})
	})
	mux.HandleFunc("PUT /topics/subtopics/variables", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.SubTopic{SubtopicSlug: "variables", Title: "Variables"})
	})
	mux.HandleFunc("DELETE /topics/subtopics/variables", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "SubTopic deleted successfully!",
			"subtopic": models.SubTopic{SubtopicSlug: "variables"},
		})
	})
	mux.HandleFunc("POST /links", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, models.ShortLink{Code: "ab12cd34", URL: body["url"]})
	})
	mux.HandleFunc("GET /links/ab12cd34", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.ShortLink{Code: "ab12cd34", URL: "https://byteforge.dev", Visits: 3})
	})
	mux.HandleFunc("DELETE /topics/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Topic not found"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, New(server.URL)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestUpdateWrappersDecodeDocuments(t *testing.T) {
	_, api := fakeAPI(t)

	topic, err := api.UpdateTopic("java-basics", map[string]string{"title": "Java Basics v2"})
	require.NoError(t, err)
	assert.Equal(t, models.Slug("java-basics"), topic.Slug)
	assert.Equal(t, "Java Basics v2", topic.Title)

	category, err := api.UpdateCategory("java-fundamentals", map[string]string{"title": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", category.Title)

	subtopic, err := api.UpdateSubTopic("variables", map[string]string{"title": "Variables"})
	require.NoError(t, err)
	assert.Equal(t, models.Slug("variables"), subtopic.SubtopicSlug)
}

func TestDeleteWrappersDecodeEnvelopes(t *testing.T) {
	_, api := fakeAPI(t)

	catResult, err := api.DeleteCategory("java-fundamentals")
	require.NoError(t, err)
	assert.Equal(t, "Category deleted successfully!", catResult.Message)
	assert.Equal(t, models.Slug("java-fundamentals"), catResult.DeletedCategory.Slug)

	subResult, err := api.DeleteSubTopic("variables")
	require.NoError(t, err)
	assert.Equal(t, "SubTopic deleted successfully!", subResult.Message)
	assert.Equal(t, models.Slug("variables"), subResult.SubTopic.SubtopicSlug)
}

func TestLinkWrappers(t *testing.T) {
	_, api := fakeAPI(t)

	link, err := api.ShortenLink("https://byteforge.dev")
	require.NoError(t, err)
	assert.Equal(t, "ab12cd34", link.Code)
	assert.Equal(t, "https://byteforge.dev", link.URL)

	stats, err := api.GetLinkStats("ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Visits)
}

func TestWrapperSurfacesAPIError(t *testing.T) {
	_, api := fakeAPI(t)

	_, err := api.DeleteTopic("missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Topic not found", apiErr.Message)
}
