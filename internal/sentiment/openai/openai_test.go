package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gogpt "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/config"
	"github.com/aashnajoshi/TextSense/internal/llm"
)

func newTestAnalyzer(t *testing.T, content string) *Analyzer {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gogpt.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "what a day", req.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gogpt.ChatCompletionResponse{
			Choices: []gogpt.ChatCompletionChoice{{Message: gogpt.ChatCompletionMessage{Content: content}}},
		})
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	return New(client, "gpt-4o-mini")
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer(t, `{"sentiment":"Positive","positive":0.9,"neutral":0.08,"negative":0.02,"language":"EN"}`)
	assert.Equal(t, "openai", a.Name())

	res, err := a.Analyze(context.Background(), "what a day")
	require.NoError(t, err)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.9, res.Scores.Positive)
	assert.Equal(t, 0.08, res.Scores.Neutral)
	assert.Equal(t, 0.02, res.Scores.Negative)
	assert.Equal(t, "en", res.Language)
}

func TestAnalyze_NoLanguage(t *testing.T) {
	a := newTestAnalyzer(t, `{"sentiment":"neutral","positive":0.1,"neutral":0.8,"negative":0.1}`)

	res, err := a.Analyze(context.Background(), "what a day")
	require.NoError(t, err)
	assert.Empty(t, res.Language)
}

func TestAnalyze_UnknownLabel(t *testing.T) {
	a := newTestAnalyzer(t, `{"sentiment":"ecstatic","positive":1,"neutral":0,"negative":0}`)

	_, err := a.Analyze(context.Background(), "what a day")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ecstatic")
}
