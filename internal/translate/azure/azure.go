// Package azure implements translate.Translator with Azure AI Translator v3.
package azure

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
	"github.com/aashnajoshi/TextSense/internal/translate"
)

// Translator calls the Translator text API. The client must carry the
// resource region.
type Translator struct {
	client *cognitive.Client
}

// New creates a Translator.
func New(client *cognitive.Client) *Translator {
	return &Translator{client: client}
}

// Name returns the backend identifier.
func (t *Translator) Name() string { return "azure" }

// Translate posts one text element with source auto-detection.
func (t *Translator) Translate(ctx context.Context, text, target string) (*translate.Result, error) {
	target = strings.TrimSpace(target)

	q := url.Values{}
	q.Set("api-version", "3.0")
	q.Set("to", target)

	var resp []item
	if err := t.client.PostJSON(ctx, "/translate", q, []element{{Text: text}}, &resp); err != nil {
		return nil, fmt.Errorf("translate request: %w", err)
	}
	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return nil, fmt.Errorf("translate response has no translations")
	}

	first := resp[0]
	res := &translate.Result{
		Text: first.Translations[0].Text,
		To:   first.Translations[0].To,
	}
	if first.DetectedLanguage != nil {
		res.DetectedLanguage = first.DetectedLanguage.Language
		res.Score = first.DetectedLanguage.Score
	}

	slog.Debug("translation complete", "backend", "azure", "from", res.DetectedLanguage, "to", res.To)
	return res, nil
}

type element struct {
	Text string `json:"Text"`
}

type item struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}
