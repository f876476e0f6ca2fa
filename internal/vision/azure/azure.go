// Package azure implements vision.Reader with Azure AI Vision Image
// Analysis 4.0 (the "read" feature).
package azure

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
	"github.com/aashnajoshi/TextSense/internal/vision"
)

const (
	analyzePath = "/computervision/imageanalysis:analyze"
	apiVersion  = "2024-02-01"
)

// Reader calls the Image Analysis endpoint.
type Reader struct {
	client *cognitive.Client
}

// New creates a Reader on an Azure AI services client.
func New(client *cognitive.Client) *Reader {
	return &Reader{client: client}
}

// Name returns the backend identifier.
func (r *Reader) Name() string { return "azure" }

// Read posts the raw image and maps the read result blocks and lines.
func (r *Reader) Read(ctx context.Context, image []byte, contentType string) (*vision.ReadResult, error) {
	q := url.Values{}
	q.Set("api-version", apiVersion)
	q.Set("features", "read")

	var resp response
	err := r.client.Do(ctx, http.MethodPost, analyzePath, q,
		"application/octet-stream", bytes.NewReader(image), &resp)
	if err != nil {
		return nil, fmt.Errorf("image analysis request: %w", err)
	}

	out := &vision.ReadResult{}
	if resp.ReadResult != nil {
		for _, b := range resp.ReadResult.Blocks {
			block := vision.Block{}
			for _, l := range b.Lines {
				block.Lines = append(block.Lines, vision.Line{Text: l.Text})
			}
			out.Blocks = append(out.Blocks, block)
		}
	}

	slog.Debug("image analysis complete", "backend", "azure",
		"image_bytes", len(image), "content_type", contentType, "lines", len(out.Lines()))
	return out, nil
}

type response struct {
	ModelVersion string `json:"modelVersion"`
	ReadResult   *struct {
		Blocks []struct {
			Lines []struct {
				Text string `json:"text"`
			} `json:"lines"`
		} `json:"blocks"`
	} `json:"readResult"`
}
