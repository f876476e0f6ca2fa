package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/shell"
	"github.com/aashnajoshi/TextSense/internal/stub"
)

type harness struct {
	analyzer   *stub.Analyzer
	reader     *stub.Reader
	translator *stub.Translator
	recognizer *stub.Recognizer
	deps       shell.Deps
}

func newHarness(lines ...string) *harness {
	h := &harness{
		analyzer:   stub.NewAnalyzer(),
		reader:     stub.NewReader(lines...),
		translator: stub.NewTranslator(),
		recognizer: stub.NewRecognizer("Good morning to everyone in the room today."),
	}
	h.deps = shell.Deps{
		Pipeline:   pipeline.New(h.analyzer, h.translator),
		Reader:     h.reader,
		Recognizer: h.recognizer,
		Microphone: audio.StaticClip{Data: []byte("RIFF")},
	}
	return h
}

func run(t *testing.T, deps shell.Deps, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(deps, strings.NewReader(input), &out)
	assert.Equal(t, "console", sh.Name())
	require.NoError(t, sh.Run(context.Background()))
	require.NoError(t, sh.Close())
	return out.String()
}

func TestRun_TextThenTranslate(t *testing.T) {
	h := newHarness()
	out := run(t, h.deps, "1\nThe food at this restaurant was wonderful and the staff were kind.\nfr\nq\n")

	assert.Contains(t, out, "1. Text")
	assert.Contains(t, out, "3. Voice")
	assert.Contains(t, out, "Language detected: English (en)")
	assert.Contains(t, out, "Sentiment detected: positive")
	assert.Contains(t, out, "Confidence Scores: Positive: 0.9, Neutral: 0.08, Negative: 0.02")
	assert.Contains(t, out, "Translated text in fr: [fr] The food at this restaurant")
	assert.Contains(t, out, "Detected source language: English (en)")
	assert.Contains(t, out, "Goodbye.")
	assert.Len(t, h.analyzer.Calls(), 1)
	assert.Len(t, h.translator.Calls(), 1)
}

func TestRun_QuitSentinelSkipsTranslation(t *testing.T) {
	h := newHarness()
	out := run(t, h.deps, "1\nhello\nq\nq\n")

	assert.Len(t, h.analyzer.Calls(), 1)
	assert.Empty(t, h.translator.Calls())
	assert.NotContains(t, out, "Translated text")
}

func TestRun_ImageWithoutText(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "blank.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o644))

	out := run(t, h.deps, "2\n"+path+"\nq\n")

	assert.Contains(t, out, "No text detected in the image.")
	assert.Equal(t, 1, h.reader.Calls())
	assert.Empty(t, h.analyzer.Calls())
	assert.Empty(t, h.translator.Calls())
	assert.NotContains(t, out, "target language")
}

func TestRun_ImageWithText(t *testing.T) {
	h := newHarness("OPEN", "24 hours")
	path := filepath.Join(t.TempDir(), "sign.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xD8}, 0o644))

	out := run(t, h.deps, "2\n\""+path+"\"\nq\nq\n")

	assert.Contains(t, out, "Detected Text:\nOPEN\n24 hours\n")
	assert.Equal(t, []string{"OPEN 24 hours"}, h.analyzer.Calls())
}

func TestRun_NoFileAndBadType(t *testing.T) {
	h := newHarness("x")
	gif := filepath.Join(t.TempDir(), "clip.gif")
	require.NoError(t, os.WriteFile(gif, []byte("GIF89a"), 0o644))

	out := run(t, h.deps, "2\n\n2\n"+gif+"\nq\n")

	assert.Contains(t, out, "No file selected.")
	assert.Contains(t, out, `Unsupported file type ".gif"`)
	assert.Equal(t, 0, h.reader.Calls())
}

func TestRun_Voice(t *testing.T) {
	h := newHarness()
	out := run(t, h.deps, "3\nde\nq\n")

	assert.Contains(t, out, "Detected Voice:\nGood morning to everyone in the room today.")
	assert.Contains(t, out, "Translated text in de:")
	assert.Equal(t, 1, h.recognizer.Calls())
}

func TestRun_VoiceDisabled(t *testing.T) {
	h := newHarness()
	h.deps.Recognizer = nil
	out := run(t, h.deps, "3\nq\n")

	assert.NotContains(t, out, "3. Voice")
	assert.Contains(t, out, "Invalid choice. Please enter 1, 2 or q.")
}

func TestRun_FaultReturnsToMenu(t *testing.T) {
	h := newHarness()
	h.analyzer.Err = errors.New("401 access denied")
	out := run(t, h.deps, "1\nhello\n9\nq\n")

	assert.Contains(t, out, "Error: analyzing sentiment: 401 access denied")
	assert.Contains(t, out, "Invalid choice.")
	assert.Empty(t, h.translator.Calls())
}

func TestRun_EmptyTextAndEOF(t *testing.T) {
	h := newHarness()
	out := run(t, h.deps, "1\n   \n")

	assert.Contains(t, out, "Please enter some text to analyze.")
	assert.Empty(t, h.analyzer.Calls())
}

func TestRun_CancelledContext(t *testing.T) {
	h := newHarness()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(h.deps, r, &bytes.Buffer{}).Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_LongLine(t *testing.T) {
	h := newHarness()
	text := strings.TrimSpace(strings.Repeat("good ", 20000))
	out := run(t, h.deps, "1\n"+text+"\nq\nq\n")

	assert.Equal(t, []string{text}, h.analyzer.Calls())
	assert.Contains(t, out, "Goodbye.")
}

func TestRun_LineTooLongIsAnError(t *testing.T) {
	h := newHarness()
	input := "1\n" + strings.Repeat("a", maxLineBytes+10) + "\nq\n"

	var out bytes.Buffer
	err := New(h.deps, strings.NewReader(input), &out).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "reading input")
	assert.Empty(t, h.analyzer.Calls())
}
