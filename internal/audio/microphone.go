package audio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"time"

	"github.com/aashnajoshi/TextSense/internal/config"
)

// Runner executes the recorder and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Microphone records from the default input device.
type Microphone struct {
	cfg config.MicrophoneConfig
	run Runner
}

// MicrophoneOption customizes a Microphone.
type MicrophoneOption func(*Microphone)

// WithRunner replaces the process runner (used in tests).
func WithRunner(r Runner) MicrophoneOption {
	return func(m *Microphone) { m.run = r }
}

// NewMicrophone creates a microphone source from config.
func NewMicrophone(cfg config.MicrophoneConfig, opts ...MicrophoneOption) *Microphone {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	m := &Microphone{cfg: cfg, run: execRunner}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Capture records one clip of the configured duration. The recorder process
// lives only for the duration of the call.
func (m *Microphone) Capture(ctx context.Context) (Clip, error) {
	slog.Info("recording", "duration", m.cfg.Duration, "device", m.cfg.Device)

	pcm, err := m.run(ctx, m.cfg.Command, m.args()...)
	if err != nil {
		return Clip{}, fmt.Errorf("recording with %s: %w", m.cfg.Command, err)
	}
	if len(pcm) == 0 {
		return Clip{}, ErrEmptyClip
	}

	wav := EncodeWAV(pcm, m.cfg.SampleRate, 1, 2)
	slog.Debug("recording complete", "pcm_bytes", len(pcm))
	return Clip{Data: wav, ContentType: ContentTypeWAV, SampleRate: m.cfg.SampleRate}, nil
}

// args builds the ffmpeg command line: raw signed 16-bit mono on stdout.
func (m *Microphone) args() []string {
	var args []string
	args = append(args, "-hide_banner", "-loglevel", "error")
	if m.cfg.Format != "" {
		args = append(args, "-f", m.cfg.Format)
	}
	args = append(args,
		"-i", m.cfg.Device,
		"-t", formatSeconds(m.cfg.Duration),
		"-ac", "1",
		"-ar", strconv.Itoa(m.cfg.SampleRate),
		"-f", "s16le",
		"-",
	)
	return args
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
