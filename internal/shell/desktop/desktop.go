// Package desktop implements a dialog-driven shell with a native file
// picker.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aashnajoshi/TextSense/internal/format"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/shell"
)

const (
	title = "TextSense"

	choiceText  = "Text"
	choiceImage = "Image"
	choiceVoice = "Voice"
	choiceQuit  = "Quit"
)

// imagePatterns filters the file picker.
var imagePatterns = []string{"*.jpg", "*.jpeg", "*.png", "*.bmp"}

// Shell is the desktop front end.
type Shell struct {
	deps    shell.Deps
	dialogs Dialogs
	session *pipeline.Session
}

// New creates a desktop shell. A nil dialogs uses zenity.
func New(deps shell.Deps, dialogs Dialogs) *Shell {
	if dialogs == nil {
		dialogs = Zenity{}
	}
	return &Shell{deps: deps, dialogs: dialogs, session: pipeline.NewSession()}
}

// Name returns the shell identifier.
func (s *Shell) Name() string { return "desktop" }

// Close is a no-op.
func (s *Shell) Close() error { return nil }

// Run shows the input menu until the user quits or cancels it.
func (s *Shell) Run(ctx context.Context) error {
	items := []string{choiceText, choiceImage}
	if s.deps.VoiceEnabled() {
		items = append(items, choiceVoice)
	}
	items = append(items, choiceQuit)

	for ctx.Err() == nil {
		choice, err := s.dialogs.Choose(title, "What type of input do you want to analyze?", items)
		if errors.Is(err, ErrCanceled) || choice == choiceQuit {
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu dialog: %w", err)
		}

		in, ok, err := s.acquirer(choice)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		r := &report{}
		if _, err := s.deps.Pipeline.Analyze(ctx, s.session, in, r); err != nil {
			s.show(err, r)
			continue
		}
		if err := s.dialogs.Info(title+": Results", r.String()); err != nil && !errors.Is(err, ErrCanceled) {
			return fmt.Errorf("results dialog: %w", err)
		}

		s.translate(ctx)
	}
	return nil
}

// acquirer builds the input for a menu choice. ok is false when the user
// backed out.
func (s *Shell) acquirer(choice string) (pipeline.Acquirer, bool, error) {
	switch choice {
	case choiceText:
		text, err := s.dialogs.Entry(title+": Text", "Enter text to analyze:")
		if errors.Is(err, ErrCanceled) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("text dialog: %w", err)
		}
		return pipeline.TextInput{Text: text}, true, nil

	case choiceImage:
		path, err := s.dialogs.SelectImage("Select an Image", imagePatterns)
		if err != nil && !errors.Is(err, ErrCanceled) {
			return nil, false, fmt.Errorf("file dialog: %w", err)
		}
		return pipeline.ImageInput{
			Reader:     s.deps.Reader,
			Open:       pipeline.OpenFile(path),
			Extensions: pipeline.DesktopImageExtensions,
		}, true, nil

	case choiceVoice:
		if err := s.dialogs.Info(title+": Voice", "Press OK, then speak."); errors.Is(err, ErrCanceled) {
			return nil, false, nil
		}
		return pipeline.VoiceInput{Recognizer: s.deps.Recognizer, Audio: s.deps.Microphone}, true, nil
	}

	slog.Warn("unknown menu choice", "choice", choice)
	return nil, false, nil
}

func (s *Shell) translate(ctx context.Context) {
	target, err := s.dialogs.Entry(title+": Translate",
		"Enter the target language code for translation (e.g., 'fr' for French, q to skip).\n"+
			"Language codes: "+format.LanguageCodesURL)
	if err != nil {
		return
	}

	r := &report{}
	if _, err := s.deps.Pipeline.Translate(ctx, s.session, target, r); err != nil {
		s.show(err, r)
		return
	}
	_ = s.dialogs.Info(title+": Translation", r.String())
}

// show presents a non-successful outcome.
func (s *Shell) show(err error, r *report) {
	switch {
	case errors.Is(err, pipeline.ErrSkipped):
	case errors.Is(err, pipeline.ErrNoContent):
		_ = s.dialogs.Info(title, strings.Join(r.notices, "\n"))
	default:
		_ = s.dialogs.Error(title+": Error", err.Error())
	}
}

// report accumulates rendered lines for one dialog.
type report struct {
	lines   []string
	notices []string
}

func (r *report) Acquired(acq pipeline.Acquisition) { r.lines = append(r.lines, format.Acquired(acq)...) }

func (r *report) Analysis(a pipeline.Analysis) { r.lines = append(r.lines, format.Analysis(a)...) }

func (r *report) Translation(t pipeline.Translation) {
	r.lines = append(r.lines, format.Translation(t)...)
}

func (r *report) Notice(msg string) { r.notices = append(r.notices, msg) }

func (r *report) String() string { return strings.Join(r.lines, "\n") }
