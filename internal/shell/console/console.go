// Package console implements a line-mode shell over an io.Reader and
// io.Writer (normally stdin and stdout).
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aashnajoshi/TextSense/internal/format"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/shell"
)

// Shell is the console front end.
type Shell struct {
	deps    shell.Deps
	in      io.Reader
	out     io.Writer
	session *pipeline.Session

	once    sync.Once
	lines   chan string
	readErr error // set before lines is closed
	drained bool  // lines was seen closed
}

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// New creates a console shell.
func New(deps shell.Deps, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		deps:    deps,
		in:      in,
		out:     out,
		session: pipeline.NewSession(),
	}
}

// Name returns the shell identifier.
func (s *Shell) Name() string { return "console" }

// Close is a no-op; the caller owns the reader and writer.
func (s *Shell) Close() error { return nil }

// Run loops over the menu until the user quits, input ends, or ctx is
// cancelled. Faults are printed and the loop returns to the menu. A failure
// reading input is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.menu()
		choice, ok := s.readLine(ctx)
		if !ok {
			return s.inputErr()
		}

		var in pipeline.Acquirer
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			s.print("Enter text to analyze: ")
			text, ok := s.readLine(ctx)
			if !ok {
				return s.inputErr()
			}
			in = pipeline.TextInput{Text: text}
		case "2":
			s.print("Enter the path of an image (jpg, jpeg, png, bmp): ")
			path, ok := s.readLine(ctx)
			if !ok {
				return s.inputErr()
			}
			in = pipeline.ImageInput{
				Reader:     s.deps.Reader,
				Open:       pipeline.OpenFile(strings.Trim(strings.TrimSpace(path), `"'`)),
				Extensions: pipeline.DesktopImageExtensions,
			}
		case "3":
			if !s.deps.VoiceEnabled() {
				s.println(invalidChoice(false))
				continue
			}
			s.println("Recording... speak now.")
			in = pipeline.VoiceInput{Recognizer: s.deps.Recognizer, Audio: s.deps.Microphone}
		case "q":
			s.println("Goodbye.")
			return nil
		default:
			s.println(invalidChoice(s.deps.VoiceEnabled()))
			continue
		}

		if _, err := s.deps.Pipeline.Analyze(ctx, s.session, in, s); err != nil {
			if pipeline.IsFault(err) {
				s.println("Error: " + err.Error())
			}
			if ctx.Err() != nil {
				return nil
			}
			continue
		}

		if !s.translate(ctx) {
			return s.inputErr()
		}
	}
}

// translate prompts for a target language once. It returns false when
// input has ended.
func (s *Shell) translate(ctx context.Context) bool {
	s.println("Language codes: " + format.LanguageCodesURL)
	s.print("Enter the target language code for translation (e.g., 'fr' for French, q to skip): ")
	target, ok := s.readLine(ctx)
	if !ok {
		return false
	}
	if _, err := s.deps.Pipeline.Translate(ctx, s.session, target, s); pipeline.IsFault(err) {
		s.println("Error: " + err.Error())
	}
	return true
}

func (s *Shell) menu() {
	s.println("")
	s.println("What type of input do you want to analyze?")
	s.println("1. Text")
	s.println("2. Image")
	if s.deps.VoiceEnabled() {
		s.println("3. Voice")
	}
	s.println("q. Quit")
	s.print("Enter your choice: ")
}

func invalidChoice(voice bool) string {
	if voice {
		return "Invalid choice. Please enter 1, 2, 3 or q."
	}
	return "Invalid choice. Please enter 1, 2 or q."
}

// readLine returns the next input line. Reading happens on a separate
// goroutine so a cancelled context unblocks the prompt.
func (s *Shell) readLine(ctx context.Context) (string, bool) {
	s.once.Do(func() {
		s.lines = make(chan string)
		go func() {
			defer close(s.lines)
			sc := bufio.NewScanner(s.in)
			sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			for sc.Scan() {
				s.lines <- strings.TrimRight(sc.Text(), "\r")
			}
			s.readErr = sc.Err()
		}()
	})

	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		if !ok {
			s.drained = true
		}
		return line, ok
	}
}

// inputErr reports why input ended. It is nil at EOF.
func (s *Shell) inputErr() error {
	if s.drained && s.readErr != nil {
		return fmt.Errorf("reading input: %w", s.readErr)
	}
	return nil
}

func (s *Shell) print(msg string) { fmt.Fprint(s.out, msg) }

func (s *Shell) println(msg string) { fmt.Fprintln(s.out, msg) }

func (s *Shell) printLines(lines []string) {
	for _, l := range lines {
		s.println(l)
	}
}

// Acquired prints the text read from an image or recording.
func (s *Shell) Acquired(acq pipeline.Acquisition) { s.printLines(format.Acquired(acq)) }

// Analysis prints the language, label and confidence scores.
func (s *Shell) Analysis(a pipeline.Analysis) { s.printLines(format.Analysis(a)) }

// Translation prints the translated text and its detected source language.
func (s *Shell) Translation(t pipeline.Translation) { s.printLines(format.Translation(t)) }

// Notice prints a no-content message.
func (s *Shell) Notice(msg string) { s.println(msg) }
