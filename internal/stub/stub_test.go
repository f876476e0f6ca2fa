package stub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashnajoshi/TextSense/internal/audio"
)

func TestAnalyzer(t *testing.T) {
	a := NewAnalyzer()
	res, err := a.Analyze(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.08, res.Scores.Neutral)
	assert.Equal(t, []string{"hi"}, a.Calls())

	a.Err = errors.New("boom")
	_, err = a.Analyze(context.Background(), "again")
	assert.EqualError(t, err, "boom")
	assert.Len(t, a.Calls(), 2)
}

func TestReaderTranslatorRecognizer(t *testing.T) {
	r := NewReader("a", "b")
	res, err := r.Read(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "a b", res.Text())
	assert.Equal(t, 1, r.Calls())

	tr := NewTranslator()
	out, err := tr.Translate(context.Background(), "hello", " fr")
	require.NoError(t, err)
	assert.Equal(t, "[fr] hello", out.Text)
	assert.Equal(t, []TranslateCall{{Text: "hello", Target: "fr"}}, tr.Calls())

	rec := NewRecognizer("")
	sr, err := rec.Recognize(context.Background(), audio.Clip{})
	require.NoError(t, err)
	assert.False(t, sr.Recognized())
}
