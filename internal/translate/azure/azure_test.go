package azure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
)

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "3.0", r.URL.Query().Get("api-version"))
		assert.Equal(t, "fr", r.URL.Query().Get("to"))
		assert.Equal(t, "tr-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "westeurope", r.Header.Get("Ocp-Apim-Subscription-Region"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"Text":"Hello world"}]`, string(body))

		_, _ = w.Write([]byte(`[{
			"detectedLanguage": {"language": "en", "score": 1.0},
			"translations": [{"text": "Bonjour le monde", "to": "fr"}]
		}]`))
	}))
	defer server.Close()

	tr := New(cognitive.New(server.URL, "tr-key", cognitive.WithRegion("westeurope")))
	assert.Equal(t, "azure", tr.Name())

	res, err := tr.Translate(context.Background(), "Hello world", " fr ")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", res.Text)
	assert.Equal(t, "fr", res.To)
	assert.Equal(t, "en", res.DetectedLanguage)
	assert.Equal(t, 1.0, res.Score)
}

func TestTranslate_InvalidTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400036,"message":"The target language is not valid."}}`))
	}))
	defer server.Close()

	_, err := New(cognitive.New(server.URL, "k")).Translate(context.Background(), "hi", "klingon")
	require.Error(t, err)

	var apiErr *cognitive.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "400036", apiErr.Code)
}

func TestTranslate_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := New(cognitive.New(server.URL, "k")).Translate(context.Background(), "hi", "de")
	assert.Error(t, err)
}
