// Package azure implements sentiment.Analyzer with Azure AI Language
// (Text Analytics v3.1).
package azure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
)

const (
	sentimentPath = "/text/analytics/v3.1/sentiment"
	languagesPath = "/text/analytics/v3.1/languages"
)

// Analyzer calls the Text Analytics sentiment endpoint.
type Analyzer struct {
	client   *cognitive.Client
	language string
}

// New creates an Analyzer. language is an optional ISO-639-1 hint; when it
// is empty the language endpoint is asked first and its answer is passed to
// the sentiment call.
func New(client *cognitive.Client, language string) *Analyzer {
	return &Analyzer{client: client, language: language}
}

// Name returns the backend identifier.
func (a *Analyzer) Name() string { return "azure" }

// Analyze sends text as a single document and returns its classification.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*sentiment.Result, error) {
	lang := a.language
	if lang == "" {
		detected, err := a.detectLanguage(ctx, text)
		if err != nil {
			return nil, err
		}
		lang = detected
	}
	req := request{Documents: []document{{ID: "1", Text: text, Language: lang}}}

	var resp response
	if err := a.client.PostJSON(ctx, sentimentPath, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("sentiment request: %w", err)
	}

	if len(resp.Errors) > 0 {
		e := resp.Errors[0].Error
		return nil, fmt.Errorf("sentiment document %s: %w", resp.Errors[0].ID,
			&cognitive.APIError{Status: 200, Code: e.Code, Message: e.Message})
	}
	if len(resp.Documents) == 0 {
		return nil, fmt.Errorf("sentiment response has no documents")
	}

	doc := resp.Documents[0]
	slog.Debug("sentiment complete", "backend", "azure", "label", doc.Sentiment)
	return &sentiment.Result{
		Label: doc.Sentiment,
		Scores: sentiment.Scores{
			Positive: doc.ConfidenceScores.Positive,
			Neutral:  doc.ConfidenceScores.Neutral,
			Negative: doc.ConfidenceScores.Negative,
		},
		Language: lang,
	}, nil
}

// detectLanguage returns the ISO-639-1 code of text, or "" when the service
// cannot tell.
func (a *Analyzer) detectLanguage(ctx context.Context, text string) (string, error) {
	req := request{Documents: []document{{ID: "1", Text: text}}}

	var resp languagesResponse
	if err := a.client.PostJSON(ctx, languagesPath, nil, req, &resp); err != nil {
		return "", fmt.Errorf("language request: %w", err)
	}
	if len(resp.Documents) == 0 {
		return "", nil
	}

	lang := resp.Documents[0].DetectedLanguage
	slog.Debug("language detected", "backend", "azure", "language", lang.ISO6391Name, "score", lang.ConfidenceScore)
	if lang.ISO6391Name == "(Unknown)" {
		return "", nil
	}
	return lang.ISO6391Name, nil
}

type request struct {
	Documents []document `json:"documents"`
}

type document struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type response struct {
	Documents []struct {
		ID               string `json:"id"`
		Sentiment        string `json:"sentiment"`
		ConfidenceScores struct {
			Positive float64 `json:"positive"`
			Neutral  float64 `json:"neutral"`
			Negative float64 `json:"negative"`
		} `json:"confidenceScores"`
	} `json:"documents"`
	Errors []struct {
		ID    string `json:"id"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"errors"`
}

type languagesResponse struct {
	Documents []struct {
		ID               string `json:"id"`
		DetectedLanguage struct {
			Name            string  `json:"name"`
			ISO6391Name     string  `json:"iso6391Name"`
			ConfidenceScore float64 `json:"confidenceScore"`
		} `json:"detectedLanguage"`
	} `json:"documents"`
}
