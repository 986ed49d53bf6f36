package strcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects the case mapping used by a Transformer.
type Mode uint8

const (
	// ModeASCII maps only ASCII letters, byte by byte.
	ModeASCII Mode = iota
	// ModeUnicode applies the Unicode default case mapping.
	ModeUnicode
)

// Textual mode names as they appear in configuration and flags.
const (
	ModeASCIIString   = "ascii"
	ModeUnicodeString = "unicode"
)

// caseOffset is the distance between an ASCII lowercase letter and its uppercase form.
const caseOffset = 'a' - 'A'

// ParseMode converts a mode name into a Mode.
// The second return value is false when the name is unknown.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ModeASCIIString, "":
		return ModeASCII, true
	case ModeUnicodeString:
		return ModeUnicode, true
	default:
		return ModeASCII, false
	}
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if m == ModeUnicode {
		return ModeUnicodeString
	}

	return ModeASCIIString
}

// Upper returns a copy of s with every ASCII lowercase letter mapped to uppercase.
func Upper(s string) string {
	i := indexInRange(s, 'a', 'z')
	if i < 0 {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= caseOffset
		}
	}

	return string(b)
}

// Lower returns a copy of s with every ASCII uppercase letter mapped to lowercase.
func Lower(s string) string {
	i := indexInRange(s, 'A', 'Z')
	if i < 0 {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += caseOffset
		}
	}

	return string(b)
}

func indexInRange(s string, lo, hi byte) int {
	for i := range len(s) {
		if s[i] >= lo && s[i] <= hi {
			return i
		}
	}

	return -1
}

// Transformer applies case mapping in a fixed Mode.
// It is stateless and safe for concurrent use.
type Transformer struct {
	mode Mode
}

// NewTransformer creates a Transformer for the given mode.
func NewTransformer(mode Mode) *Transformer {
	return &Transformer{mode: mode}
}

// Mode returns the mode of the transformer.
func (t *Transformer) Mode() Mode {
	return t.mode
}

// Upper maps s to uppercase.
func (t *Transformer) Upper(s string) string {
	if t.mode == ModeUnicode {
		// A Caser keeps state between calls, so one is built per call.
		return cases.Upper(language.Und).String(s)
	}

	return Upper(s)
}

// Lower maps s to lowercase.
func (t *Transformer) Lower(s string) string {
	if t.mode == ModeUnicode {
		return cases.Lower(language.Und).String(s)
	}

	return Lower(s)
}
