package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:        srv.URL,
		Token:          "test-token",
		SentimentModel: "sentiment-model",
		NERModel:       "ner-model",
		EmbeddingModel: "embedding-model",
	})
}

func TestQuerySendsBearerTokenAndInputs(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody QueryRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`)) //nolint:errcheck
	})

	_, err := client.Query(context.Background(), "some/model", "xin chào")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/models/some/model", gotPath)
	assert.Equal(t, "xin chào", gotBody.Inputs)
}

func TestQueryNon2xxIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	_, err := client.Query(context.Background(), "some/model", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClassifySentimentDecodesNestedLabels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"5 stars","score":0.91},{"label":"4 stars","score":0.07}]]`)) //nolint:errcheck
	})

	classes, err := client.ClassifySentiment(context.Background(), "tuyệt vời")
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "5 stars", classes[0].Label)
	assert.InDelta(t, 0.91, classes[0].Score, 1e-9)
}

func TestClassifySentimentEmptyResponseIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	_, err := client.ClassifySentiment(context.Background(), "text")
	assert.Error(t, err)
}

func TestExtractEntitiesDecodesSpans(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"entity_group":"LOC","score":0.97,"word":"Quận 7","start":10,"end":16}]`)) //nolint:errcheck
	})

	entities, err := client.ExtractEntities(context.Background(), "căn hộ tại Quận 7")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "LOC", entities[0].EntityGroup)
	assert.Equal(t, "Quận 7", entities[0].Word)
}

func TestPingDiscardsResponse(t *testing.T) {
	var gotModel string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotModel = r.URL.Path
		w.Write([]byte(`[[0.1,0.2,0.3]]`)) //nolint:errcheck
	})

	err := client.Ping(context.Background(), "mẫu")
	require.NoError(t, err)
	assert.Equal(t, "/models/embedding-model", gotModel)
}
