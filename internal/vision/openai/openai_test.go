package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gogpt "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/config"
	"github.com/aashnajoshi/TextSense/internal/llm"
)

func TestRead(t *testing.T) {
	var imageURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gogpt.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Messages, 2) && assert.Len(t, req.Messages[1].MultiContent, 1) {
			imageURL = req.Messages[1].MultiContent[0].ImageURL.URL
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gogpt.ChatCompletionResponse{
			Choices: []gogpt.ChatCompletionChoice{{Message: gogpt.ChatCompletionMessage{
				Content: `{"lines": ["STOP", "No parking"]}`,
			}}},
		})
	}))
	defer server.Close()

	client := llm.NewClient(config.OpenAIConfig{APIKey: "k", BaseURL: server.URL + "/v1"})
	r := New(client, "gpt-4o-mini")
	assert.Equal(t, "openai", r.Name())

	res, err := r.Read(context.Background(), []byte("fake-jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "STOP No parking", res.Text())
	assert.True(t, strings.HasPrefix(imageURL, "data:image/jpeg;base64,"))
}

func TestRead_NoLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gogpt.ChatCompletionResponse{
			Choices: []gogpt.ChatCompletionChoice{{Message: gogpt.ChatCompletionMessage{Content: `{"lines": []}`}}},
		})
	}))
	defer server.Close()

	client := llm.NewClient(config.OpenAIConfig{APIKey: "k", BaseURL: server.URL + "/v1"})
	res, err := New(client, "m").Read(context.Background(), []byte("x"), "image/png")
	require.NoError(t, err)
	assert.Empty(t, res.Blocks)
	assert.Equal(t, "", res.Text())
}
