package ecto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlankNilAlwaysBlank(t *testing.T) {
	all := []Type{
		Any, Integer, Float, Boolean, String, Binary, UUID,
		Decimal, DateTime, Time, Date,
		Array(Integer), Custom(TextUUID{}),
	}
	for _, typ := range all {
		t.Run(typ.String(), func(t *testing.T) {
			assert.True(t, IsBlank(typ, nil))
		})
	}
}

func TestIsBlankStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty", "", true},
		{"spaces_only", "  ", true},
		{"tabs_and_newlines", "\t\n ", true},
		{"word", "hello", false},
		{"leading_spaces_then_word", "   hello", false},
		{"trailing_spaces_ignored", "hello   ", false},
		{"internal_spaces_ignored", "a b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(String, tt.value))
		})
	}
}

func TestIsBlankBinary(t *testing.T) {
	assert.True(t, IsBlank(Binary, []byte("")))
	assert.True(t, IsBlank(Binary, []byte("   ")))
	assert.False(t, IsBlank(Binary, []byte("x")))
}

func TestIsBlankNonTextNeverBlank(t *testing.T) {
	assert.False(t, IsBlank(Integer, int64(0)))
	assert.False(t, IsBlank(Float, 0.0))
	assert.False(t, IsBlank(Boolean, false))
}

func TestIsBlankCompositeIgnoresElements(t *testing.T) {
	assert.True(t, IsBlank(Array(Integer), []any{}))
	assert.False(t, IsBlank(Array(Integer), []any{int64(1), int64(2), int64(3)}))
	// Blank elements do not make the sequence blank.
	assert.False(t, IsBlank(Array(String), []any{""}))
	// A non-sequence value for a composite descriptor is not blank.
	assert.False(t, IsBlank(Array(String), "not a sequence"))
}

// moodyBlank calls everything blank, to prove delegation.
type moodyBlank struct{ countingCustom }

func (moodyBlank) IsBlank(value any) bool { return true }

func TestIsBlankCustomDelegation(t *testing.T) {
	assert.True(t, IsBlank(Custom(moodyBlank{}), "anything"))
	assert.False(t, IsBlank(Custom(TextUUID{}), "not-empty"))
	assert.True(t, IsBlank(Custom(TextUUID{}), ""))
}
