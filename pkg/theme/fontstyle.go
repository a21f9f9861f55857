package theme

import (
	"fmt"
	"strings"
)

// FontStyle is a set of font style flags.
type FontStyle uint8

const (
	// Bold renders the token bold.
	Bold FontStyle = 1 << iota
	// Italic renders the token italic.
	Italic
	// Underline renders the token underlined.
	Underline
	// Strikethrough renders the token struck through.
	Strikethrough
)

var fontStyleWords = []struct {
	word string
	flag FontStyle
}{
	{"bold", Bold},
	{"italic", Italic},
	{"underline", Underline},
	{"strikethrough", Strikethrough},
}

// ParseFontStyle parses a space-separated fontStyle value such as "bold italic".
// The empty string and "normal" parse to zero.
func ParseFontStyle(s string) (FontStyle, error) {
	var fs FontStyle
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if word == "normal" {
			continue
		}
		found := false
		for _, w := range fontStyleWords {
			if w.word == word {
				fs |= w.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFontStyle, word)
		}
	}
	return fs, nil
}

// Has reports whether all flags in f are set.
func (fs FontStyle) Has(f FontStyle) bool { return fs&f == f }

// String returns the fontStyle form ("bold italic"), empty when no flag is set.
func (fs FontStyle) String() string {
	var words []string
	for _, w := range fontStyleWords {
		if fs.Has(w.flag) {
			words = append(words, w.word)
		}
	}
	return strings.Join(words, " ")
}
