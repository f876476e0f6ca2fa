// Package audio captures short voice clips for speech recognition.
//
// A Clip is always a complete WAV file. The Microphone source records a fixed
// window of 16-bit mono PCM through an external recorder (ffmpeg by default)
// and wraps it; StaticClip serves audio that arrived some other way, such as a
// browser upload.
package audio

import (
	"context"
	"errors"
)

// ContentTypeWAV is the content type of every clip produced here.
const ContentTypeWAV = "audio/wav"

// ErrEmptyClip is returned when a capture yields no samples.
var ErrEmptyClip = errors.New("captured clip is empty")

// Clip is one recorded utterance.
type Clip struct {
	Data        []byte
	ContentType string
	SampleRate  int
}

// Source produces a clip on demand.
type Source interface {
	Capture(ctx context.Context) (Clip, error)
}

// StaticClip is a Source that returns pre-recorded audio.
type StaticClip Clip

// Capture returns the stored clip.
func (s StaticClip) Capture(ctx context.Context) (Clip, error) {
	if len(s.Data) == 0 {
		return Clip{}, ErrEmptyClip
	}
	c := Clip(s)
	if c.ContentType == "" {
		c.ContentType = ContentTypeWAV
	}
	return c, nil
}
