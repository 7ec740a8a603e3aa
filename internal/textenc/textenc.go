// Package textenc converts between the single byte text stored in staff roll
// files and the UTF-8 strings used on the command line and in scripts.
//
// The game reads text one byte per glyph, which matches ISO-8859-1.
package textenc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnencodable is returned when text contains characters outside
// ISO-8859-1.
var ErrUnencodable = errors.New("textenc: character cannot be stored in a staff roll")

// ToFile converts UTF-8 text into file bytes.
func ToFile(s string) (string, error) {
	if isASCII(s) {
		return s, nil
	}
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnencodable, s)
	}
	return out, nil
}

// FromFile converts file bytes into UTF-8 text.
func FromFile(s string) string {
	if isASCII(s) {
		return s
	}
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		// Every byte maps to a code point in ISO-8859-1.
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
