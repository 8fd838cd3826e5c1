package ecto

import (
	"bytes"
	"strings"
	"unicode"
)

// IsBlank reports whether a canonical value counts as empty for
// presence validation. Blankness is domain-level emptiness, distinct
// from nil: nil is always blank, for every type.
//
// An array value is blank iff the sequence is empty; elements are
// never inspected. Custom descriptors delegate to the type's own
// IsBlank. For basic kinds, text is blank iff stripping leading
// whitespace leaves nothing, and every other value is never blank.
func IsBlank(t Type, value any) bool {
	if value == nil {
		return true
	}
	switch t.kind {
	case KindArray:
		seq, ok := value.([]any)
		return ok && len(seq) == 0
	case KindCustom:
		return t.custom.IsBlank(value)
	}
	switch v := value.(type) {
	case string:
		return strings.TrimLeftFunc(v, unicode.IsSpace) == ""
	case []byte:
		return len(bytes.TrimLeftFunc(v, unicode.IsSpace)) == 0
	}
	return false
}
