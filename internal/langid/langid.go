// Package langid labels subject text with a human-readable language name.
package langid

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Undetermined is the BCP-47 code used when no language can be inferred.
const Undetermined = "und"

// Language is a detected or reported language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// String renders the language as "English (en)".
func (l Language) String() string {
	if l.Code == Undetermined || l.Code == "" {
		return l.Name
	}
	return l.Name + " (" + l.Code + ")"
}

var namer = display.English.Languages()

// Detect infers the language of text.
func Detect(text string) Language {
	info := whatlanggo.Detect(text)
	if info.Lang < 0 || info.Confidence == 0 {
		return unknown()
	}
	return Describe(info.Lang.Iso6391())
}

// Describe names a language code as returned by a remote service.
func Describe(code string) Language {
	code = strings.TrimSpace(code)
	if code == "" || code == Undetermined {
		return unknown()
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Language{Code: code, Name: code}
	}
	name := namer.Name(tag)
	if name == "" {
		name = code
	}
	return Language{Code: code, Name: name}
}

func unknown() Language {
	return Language{Code: Undetermined, Name: "Unknown"}
}
