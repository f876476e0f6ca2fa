package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/speech"
	"github.com/aashnajoshi/TextSense/internal/vision"
)

// Acquisition is the outcome of acquiring a subject from one input.
type Acquisition struct {
	Source string   `json:"source"`
	Text   string   `json:"text"`
	Lines  []string `json:"lines,omitempty"`
}

// Acquirer turns one kind of user input into subject text.
type Acquirer interface {
	Source() string
	Acquire(ctx context.Context) (*Acquisition, error)
}

// TextInput is text typed by the user.
type TextInput struct {
	Text string
}

// Source returns SourceText.
func (in TextInput) Source() string { return SourceText }

// Acquire returns the trimmed text; blank text is no content.
func (in TextInput) Acquire(ctx context.Context) (*Acquisition, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, noContent(MsgEmptyText)
	}
	return &Acquisition{Source: SourceText, Text: text}, nil
}

// Opener opens an image and reports its file name.
type Opener func() (io.ReadCloser, string, error)

// ImageExtensions are the extensions accepted by the web form.
var ImageExtensions = []string{".jpg", ".jpeg", ".png"}

// DesktopImageExtensions are the extensions accepted by the console and
// desktop file pickers.
var DesktopImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// ImageInput reads text out of an image through a vision.Reader.
type ImageInput struct {
	Reader     vision.Reader
	Open       Opener
	Extensions []string // accepted lowercase extensions; empty accepts any
	MaxBytes   int64    // zero means unlimited
}

// Source returns SourceImage.
func (in ImageInput) Source() string { return SourceImage }

// Acquire opens and reads the image, closes it, then calls the OCR
// endpoint once. An image without lines is no content.
func (in ImageInput) Acquire(ctx context.Context) (*Acquisition, error) {
	if in.Open == nil {
		return nil, noContent(MsgNoFile)
	}
	rc, name, err := in.Open()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, noContent(MsgNoFile)
		}
		return nil, fmt.Errorf("opening image: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		if rc != nil {
			rc.Close()
		}
		return nil, noContent(MsgNoFile)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if len(in.Extensions) > 0 && !slices.Contains(in.Extensions, ext) {
		rc.Close()
		return nil, unsupportedType(ext, in.Extensions)
	}

	data, err := readAll(rc, in.MaxBytes)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", filepath.Base(name), err)
	}
	if len(data) == 0 {
		return nil, noContent(MsgNoFile)
	}

	res, err := in.Reader.Read(ctx, data, http.DetectContentType(data))
	if err != nil {
		return nil, fmt.Errorf("reading text from image: %w", err)
	}
	lines := nonBlank(res.Lines())
	if len(lines) == 0 {
		return nil, noContent(MsgNoTextInImage)
	}

	slog.Debug("image text extracted", "file", filepath.Base(name), "bytes", len(data), "lines", len(lines))
	return &Acquisition{Source: SourceImage, Text: strings.Join(lines, " "), Lines: lines}, nil
}

// nonBlank trims each line and drops the empty ones.
func nonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("image exceeds %d bytes", limit)
	}
	return data, nil
}

// OpenFile returns an Opener for a path on disk. A blank path means the
// user selected nothing.
func OpenFile(path string) Opener {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return func() (io.ReadCloser, string, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		return f, path, nil
	}
}

// OpenBytes returns an Opener over an in-memory upload.
func OpenBytes(name string, data []byte) Opener {
	return func() (io.ReadCloser, string, error) {
		return io.NopCloser(bytes.NewReader(data)), name, nil
	}
}

// VoiceInput captures one utterance and recognizes it.
type VoiceInput struct {
	Recognizer speech.Recognizer
	Audio      audio.Source
}

// Source returns SourceVoice.
func (in VoiceInput) Source() string { return SourceVoice }

// Acquire records a clip and sends it to the speech endpoint once. An
// unmatched or empty utterance is no content.
func (in VoiceInput) Acquire(ctx context.Context) (*Acquisition, error) {
	clip, err := in.Audio.Capture(ctx)
	if err != nil {
		if errors.Is(err, audio.ErrEmptyClip) {
			return nil, noContent(MsgNoSpeech)
		}
		return nil, fmt.Errorf("capturing audio: %w", err)
	}

	res, err := in.Recognizer.Recognize(ctx, clip)
	if err != nil {
		return nil, fmt.Errorf("recognizing speech: %w", err)
	}
	if !res.Recognized() {
		return nil, noContent(MsgNoSpeech)
	}
	return &Acquisition{Source: SourceVoice, Text: strings.TrimSpace(res.Text)}, nil
}
