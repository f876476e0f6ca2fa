// Package vision defines the interface for remote optical text extraction.
package vision

import (
	"context"
	"strings"
)

// Line is one recognized line of text.
type Line struct {
	Text string `json:"text"`
}

// Block groups lines the service considers related.
type Block struct {
	Lines []Line `json:"lines"`
}

// ReadResult is the structured OCR answer: blocks, each holding lines.
type ReadResult struct {
	Blocks []Block `json:"blocks"`
}

// Lines flattens the result in returned order: blocks first, then the
// lines within each block.
func (r *ReadResult) Lines() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, b := range r.Blocks {
		for _, l := range b.Lines {
			out = append(out, l.Text)
		}
	}
	return out
}

// Text joins every line with a single space. No lines yields "".
func (r *ReadResult) Text() string {
	return strings.Join(r.Lines(), " ")
}

// Reader extracts printed or handwritten text from an image.
type Reader interface {
	// Name returns the backend identifier.
	Name() string

	// Read sends the raw image bytes to the OCR endpoint.
	Read(ctx context.Context, image []byte, contentType string) (*ReadResult, error)
}
