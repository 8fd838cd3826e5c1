package ecto

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NFCString is a custom type that normalizes text to Unicode NFC at
// the cast boundary, so that canonically equivalent input (composed
// vs. decomposed accents) compares equal once inside the system.
// Backed by the string kind; load and dump are strict pass-throughs
// since stored values were normalized when cast.
type NFCString struct{}

// Underlying identifies the string kind as the backing storage shape.
func (NFCString) Underlying() Type { return String }

// Cast normalizes text input to NFC.
func (NFCString) Cast(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, ErrCast
	}
	return norm.NFC.String(s), nil
}

// Load passes stored text through.
func (NFCString) Load(value any) (any, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return nil, ErrLoad
}

// Dump passes canonical text through.
func (NFCString) Dump(value any) (any, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return nil, ErrDump
}

// IsBlank applies the generic leading-whitespace rule.
func (NFCString) IsBlank(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimLeftFunc(s, unicode.IsSpace) == ""
}

// String implements fmt.Stringer for descriptor display.
func (NFCString) String() string { return "nfc_string" }
