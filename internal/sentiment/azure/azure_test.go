package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
)

func TestAnalyze(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "ta-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if !assert.Len(t, req.Documents, 1) {
			return
		}
		assert.Equal(t, "J'adore ça !", req.Documents[0].Text)

		switch r.URL.Path {
		case "/text/analytics/v3.1/languages":
			assert.Empty(t, req.Documents[0].Language)
			_, _ = w.Write([]byte(`{
				"documents": [{
					"id": "1",
					"detectedLanguage": {"name": "French", "iso6391Name": "fr", "confidenceScore": 1.0},
					"warnings": []
				}],
				"errors": []
			}`))
		case "/text/analytics/v3.1/sentiment":
			assert.Equal(t, "fr", req.Documents[0].Language)
			_, _ = w.Write([]byte(`{
				"documents": [{
					"id": "1",
					"sentiment": "positive",
					"confidenceScores": {"positive": 0.9, "neutral": 0.08, "negative": 0.02},
					"sentences": [],
					"warnings": []
				}],
				"errors": [],
				"modelVersion": "2022-11-01"
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	a := New(cognitive.New(server.URL, "ta-key"), "")
	assert.Equal(t, "azure", a.Name())

	res, err := a.Analyze(context.Background(), "J'adore ça !")
	require.NoError(t, err)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.9, res.Scores.Positive)
	assert.Equal(t, 0.08, res.Scores.Neutral)
	assert.Equal(t, 0.02, res.Scores.Negative)
	assert.Equal(t, "fr", res.Language)
	assert.Equal(t, []string{"/text/analytics/v3.1/languages", "/text/analytics/v3.1/sentiment"}, paths)
}

func TestAnalyze_LanguageHintSkipsDetection(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"documents": [{"id": "1", "sentiment": "neutral",
			"confidenceScores": {"positive": 0.1, "neutral": 0.8, "negative": 0.1}}], "errors": []}`))
	}))
	defer server.Close()

	res, err := New(cognitive.New(server.URL, "k"), "en").Analyze(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "en", res.Language)
	assert.Equal(t, []string{"/text/analytics/v3.1/sentiment"}, paths)
}

func TestAnalyze_UnknownLanguageLeavesHintEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/text/analytics/v3.1/languages" {
			_, _ = w.Write([]byte(`{"documents": [{"id": "1",
				"detectedLanguage": {"name": "(Unknown)", "iso6391Name": "(Unknown)", "confidenceScore": 0.0}}]}`))
			return
		}
		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Documents, 1) {
			assert.Empty(t, req.Documents[0].Language)
		}
		_, _ = w.Write([]byte(`{"documents": [{"id": "1", "sentiment": "neutral",
			"confidenceScores": {"positive": 0.1, "neutral": 0.8, "negative": 0.1}}]}`))
	}))
	defer server.Close()

	res, err := New(cognitive.New(server.URL, "k"), "").Analyze(context.Background(), "12345")
	require.NoError(t, err)
	assert.Empty(t, res.Language)
}

func TestAnalyze_DocumentError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"documents": [],
			"errors": [{"id": "1", "error": {"code": "InvalidArgument", "message": "Document text is empty."}}]
		}`))
	}))
	defer server.Close()

	_, err := New(cognitive.New(server.URL, "k"), "en").Analyze(context.Background(), "x")
	require.Error(t, err)

	var apiErr *cognitive.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "InvalidArgument", apiErr.Code)
}

func TestAnalyze_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"401","message":"Access denied"}}`))
	}))
	defer server.Close()

	_, err := New(cognitive.New(server.URL, "bad"), "").Analyze(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Access denied")
}

func TestAnalyze_NoDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents": [], "errors": []}`))
	}))
	defer server.Close()

	_, err := New(cognitive.New(server.URL, "k"), "").Analyze(context.Background(), "x")
	assert.Error(t, err)
}
