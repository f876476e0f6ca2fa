package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/config"
	"github.com/aashnajoshi/TextSense/internal/llm"
	"github.com/aashnajoshi/TextSense/internal/speech"
)

func newTestRecognizer(t *testing.T, text string) *Recognizer {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			assert.Equal(t, "speech.wav", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "` + text + `"}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(config.OpenAIConfig{APIKey: "k", BaseURL: server.URL + "/v1"})
	return New(client, "whisper-1", "")
}

func TestRecognize(t *testing.T) {
	rec := newTestRecognizer(t, " Turn the lights on. ")
	assert.Equal(t, "openai", rec.Name())

	res, err := rec.Recognize(context.Background(), audio.Clip{Data: audio.EncodeWAV([]byte{0, 0}, 16000, 1, 2)})
	require.NoError(t, err)
	assert.Equal(t, &speech.Result{Status: speech.StatusRecognized, Text: "Turn the lights on."}, res)
}

func TestRecognize_Blank(t *testing.T) {
	rec := newTestRecognizer(t, "")

	res, err := rec.Recognize(context.Background(), audio.Clip{Data: []byte("RIFF")})
	require.NoError(t, err)
	assert.Equal(t, speech.StatusNoMatch, res.Status)
	assert.False(t, res.Recognized())
}
