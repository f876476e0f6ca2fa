// Package openai implements vision.Reader with an OpenAI vision-capable
// chat model.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/llm"
	"github.com/aashnajoshi/TextSense/internal/vision"
)

const systemPrompt = `You are an OCR engine. Transcribe every line of text visible in the image,
top to bottom, exactly as written. Respond with a JSON object and nothing else:
{"lines": ["first line", "second line"]}
If the image contains no text, respond with {"lines": []}.`

// Reader transcribes image text through the Chat Completions API.
type Reader struct {
	client *gogpt.Client
	model  string
}

// New creates a Reader using the given client and vision model.
func New(client *gogpt.Client, model string) *Reader {
	return &Reader{client: client, model: model}
}

// Name returns the backend identifier.
func (r *Reader) Name() string { return "openai" }

// Read sends the image as a data URI. The model's lines become one block.
func (r *Reader) Read(ctx context.Context, image []byte, contentType string) (*vision.ReadResult, error) {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image)
	}
	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

	var out struct {
		Lines []string `json:"lines"`
	}
	err := llm.CompleteJSON(ctx, r.client, r.model, []gogpt.ChatCompletionMessage{
		{Role: gogpt.ChatMessageRoleSystem, Content: systemPrompt},
		{
			Role: gogpt.ChatMessageRoleUser,
			MultiContent: []gogpt.ChatMessagePart{
				{Type: gogpt.ChatMessagePartTypeImageURL, ImageURL: &gogpt.ChatMessageImageURL{
					URL:    dataURI,
					Detail: gogpt.ImageURLDetailHigh,
				}},
			},
		},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("image read: %w", err)
	}

	res := &vision.ReadResult{}
	if len(out.Lines) > 0 {
		block := vision.Block{}
		for _, l := range out.Lines {
			block.Lines = append(block.Lines, vision.Line{Text: l})
		}
		res.Blocks = []vision.Block{block}
	}

	slog.Debug("image read complete", "backend", "openai", "image_bytes", len(image), "lines", len(out.Lines))
	return res, nil
}
