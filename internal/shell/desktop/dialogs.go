package desktop

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned by a Dialogs method when the user dismisses the
// dialog.
var ErrCanceled = zenity.ErrCanceled

// Dialogs is the set of native dialogs the shell uses.
type Dialogs interface {
	Choose(title, text string, items []string) (string, error)
	Entry(title, text string) (string, error)
	SelectImage(title string, patterns []string) (string, error)
	Info(title, text string) error
	Error(title, text string) error
}

// Zenity shows dialogs through ncruces/zenity (native on Windows and
// macOS, zenity/kdialog on Linux).
type Zenity struct{}

// Choose shows a single-choice list.
func (Zenity) Choose(title, text string, items []string) (string, error) {
	return zenity.List(text, items, zenity.Title(title), zenity.DisallowEmpty())
}

// Entry asks for one line of text.
func (Zenity) Entry(title, text string) (string, error) {
	return zenity.Entry(text, zenity.Title(title))
}

// SelectImage opens the native file picker. Cancelling returns an empty path.
func (Zenity) SelectImage(title string, patterns []string) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.FileFilters{{Name: "Image Files", Patterns: patterns, CaseFold: true}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}

// Info shows a message.
func (Zenity) Info(title, text string) error {
	return zenity.Info(text, zenity.Title(title))
}

// Error shows an error message.
func (Zenity) Error(title, text string) error {
	return zenity.Error(text, zenity.Title(title))
}
