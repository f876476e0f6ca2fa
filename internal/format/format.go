// Package format renders pipeline results as plain text lines for the
// console and desktop shells.
package format

import (
	"strconv"

	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
)

// LanguageCodesURL lists the target codes the translator accepts.
const LanguageCodesURL = "https://docs.microsoft.com/en-us/azure/cognitive-services/translator/language-support"

// Float prints v in its shortest round-trip form, so 0.9 stays "0.9".
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Scores renders the three confidences.
func Scores(s sentiment.Scores) string {
	return "Confidence Scores: Positive: " + Float(s.Positive) +
		", Neutral: " + Float(s.Neutral) +
		", Negative: " + Float(s.Negative)
}

// Acquired renders what was extracted from an image or recognized from
// speech. Typed text renders nothing.
func Acquired(acq pipeline.Acquisition) []string {
	switch acq.Source {
	case pipeline.SourceImage:
		return append([]string{"Detected Text:"}, acq.Lines...)
	case pipeline.SourceVoice:
		return []string{"Detected Voice:", acq.Text}
	default:
		return nil
	}
}

// Analysis renders the language label, sentiment label and scores.
func Analysis(a pipeline.Analysis) []string {
	return []string{
		"Language detected: " + a.Language.String(),
		"Sentiment detected: " + a.Sentiment.Label,
		Scores(a.Sentiment.Scores),
	}
}

// Translation renders the translated text and the detected source language.
func Translation(t pipeline.Translation) []string {
	return []string{
		"Translated text in " + t.Target + ": " + t.Result.Text,
		"Detected source language: " + t.Source.String(),
	}
}
