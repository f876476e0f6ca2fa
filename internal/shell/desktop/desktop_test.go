package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/shell"
	"github.com/aashnajoshi/TextSense/internal/stub"
)

const sentence = "The food at this restaurant was wonderful and the staff were kind."

type answer struct {
	value string
	err   error
}

// fakeDialogs replays answers for Choose, Entry and SelectImage in order.
// Once the script runs out every prompt is canceled.
type fakeDialogs struct {
	answers []answer
	menus   [][]string
	infos   []string
	errs    []string
}

func (f *fakeDialogs) next() (string, error) {
	if len(f.answers) == 0 {
		return "", ErrCanceled
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a.value, a.err
}

func (f *fakeDialogs) Choose(title, text string, items []string) (string, error) {
	f.menus = append(f.menus, items)
	return f.next()
}

func (f *fakeDialogs) Entry(title, text string) (string, error) { return f.next() }

func (f *fakeDialogs) SelectImage(title string, patterns []string) (string, error) {
	return f.next()
}

func (f *fakeDialogs) Info(title, text string) error {
	f.infos = append(f.infos, text)
	return nil
}

func (f *fakeDialogs) Error(title, text string) error {
	f.errs = append(f.errs, text)
	return nil
}

func script(values ...string) *fakeDialogs {
	f := &fakeDialogs{}
	for _, v := range values {
		f.answers = append(f.answers, answer{value: v})
	}
	return f
}

type harness struct {
	analyzer   *stub.Analyzer
	reader     *stub.Reader
	translator *stub.Translator
	deps       shell.Deps
}

func newHarness(lines ...string) *harness {
	h := &harness{
		analyzer:   stub.NewAnalyzer(),
		reader:     stub.NewReader(lines...),
		translator: stub.NewTranslator(),
	}
	h.deps = shell.Deps{
		Pipeline:   pipeline.New(h.analyzer, h.translator),
		Reader:     h.reader,
		Recognizer: stub.NewRecognizer("Good morning to everyone in the room today."),
		Microphone: audio.StaticClip{Data: []byte("RIFF")},
	}
	return h
}

func run(t *testing.T, deps shell.Deps, d *fakeDialogs) {
	t.Helper()
	sh := New(deps, d)
	assert.Equal(t, "desktop", sh.Name())
	require.NoError(t, sh.Run(context.Background()))
	require.NoError(t, sh.Close())
}

func TestRun_TextThenTranslate(t *testing.T) {
	h := newHarness()
	d := script(choiceText, sentence, "fr")
	run(t, h.deps, d)

	require.Len(t, d.infos, 2)
	assert.Contains(t, d.infos[0], "Language detected: English (en)")
	assert.Contains(t, d.infos[0], "Sentiment detected: positive")
	assert.Contains(t, d.infos[0], "Confidence Scores: Positive: 0.9, Neutral: 0.08, Negative: 0.02")
	assert.Contains(t, d.infos[1], "Translated text in fr: [fr] The food")
	assert.Empty(t, d.errs)
	assert.Equal(t, []string{sentence}, h.analyzer.Calls())
}

func TestRun_MenuItems(t *testing.T) {
	h := newHarness()
	d := script(choiceQuit)
	run(t, h.deps, d)
	require.Len(t, d.menus, 1)
	assert.Equal(t, []string{choiceText, choiceImage, choiceVoice, choiceQuit}, d.menus[0])

	h.deps.Recognizer = nil
	d = script()
	run(t, h.deps, d)
	assert.Equal(t, []string{choiceText, choiceImage, choiceQuit}, d.menus[0])
}

func TestRun_QuitSentinelSkipsTranslation(t *testing.T) {
	h := newHarness()
	d := script(choiceText, sentence, "q", choiceQuit)
	run(t, h.deps, d)

	assert.Len(t, d.infos, 1)
	assert.Empty(t, h.translator.Calls())
	assert.Len(t, d.menus, 2)
}

func TestRun_CanceledTextEntryReturnsToMenu(t *testing.T) {
	h := newHarness()
	d := &fakeDialogs{answers: []answer{{value: choiceText}, {err: ErrCanceled}, {value: choiceQuit}}}
	run(t, h.deps, d)

	assert.Empty(t, h.analyzer.Calls())
	assert.Len(t, d.menus, 2)
}

func TestRun_BlankTextShowsNotice(t *testing.T) {
	h := newHarness()
	d := script(choiceText, "   ")
	run(t, h.deps, d)

	assert.Equal(t, []string{pipeline.MsgEmptyText}, d.infos)
	assert.Empty(t, h.analyzer.Calls())
}

func TestRun_NoImageSelected(t *testing.T) {
	h := newHarness("unused")
	d := script(choiceImage, "")
	run(t, h.deps, d)

	assert.Equal(t, []string{pipeline.MsgNoFile}, d.infos)
	assert.Zero(t, h.reader.Calls())
}

func TestRun_BitmapImageAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.bmp")
	require.NoError(t, os.WriteFile(path, []byte("BM fake bitmap"), 0o644))

	h := newHarness("What a lovely morning it is", "in the middle of the city.")
	d := script(choiceImage, path)
	run(t, h.deps, d)

	require.Len(t, d.infos, 1)
	assert.Contains(t, d.infos[0], "Detected Text:")
	assert.Contains(t, d.infos[0], "What a lovely morning it is")
	assert.Equal(t, 1, h.reader.Calls())
	assert.Equal(t, []string{"What a lovely morning it is in the middle of the city."}, h.analyzer.Calls())
}

func TestRun_Voice(t *testing.T) {
	h := newHarness()
	d := script(choiceVoice)
	run(t, h.deps, d)

	require.Len(t, d.infos, 2)
	assert.Contains(t, d.infos[1], "Detected Voice:")
	assert.Contains(t, d.infos[1], "Good morning to everyone")
}

func TestRun_FaultShowsErrorDialog(t *testing.T) {
	h := newHarness()
	h.analyzer.Err = errors.New("service unavailable")
	d := script(choiceText, sentence)
	run(t, h.deps, d)

	require.Len(t, d.errs, 1)
	assert.Contains(t, d.errs[0], "service unavailable")
	assert.Empty(t, d.infos)
	assert.Empty(t, h.translator.Calls())
}

func TestRun_MenuFailure(t *testing.T) {
	h := newHarness()
	d := &fakeDialogs{answers: []answer{{err: errors.New("no display")}}}
	err := New(h.deps, d).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestRun_CancelledContext(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := script(choiceText, sentence)
	require.NoError(t, New(h.deps, d).Run(ctx))
	assert.Empty(t, d.menus)
}
