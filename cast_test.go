package ecto

import (
	"errors"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastNilPassesThroughEveryType(t *testing.T) {
	all := []Type{
		Any, Integer, Float, Boolean, String, Binary, UUID,
		Decimal, DateTime, Time, Date,
		Array(Integer), Custom(TextUUID{}),
	}
	for _, typ := range all {
		t.Run(typ.String(), func(t *testing.T) {
			got, err := Cast(typ, nil)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestCastInteger(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int64
		wantErr bool
	}{
		{"int64", int64(7), 7, false},
		{"int", 42, 42, false},
		{"int32", int32(-3), -3, false},
		{"uint64_in_range", uint64(9), 9, false},
		{"uint64_overflow", uint64(1) << 63, 0, true},
		{"text", "10", 10, false},
		{"negative_text", "-10", -10, false},
		{"text_trailing", "10.0", 0, true},
		{"text_trailing_space", "10 ", 0, true},
		{"text_garbage", "ten", 0, true},
		{"float_rejected", 10.0, 0, true},
		{"bool_rejected", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast(Integer, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCast)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCastFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{"float64", 1.5, 1.5, false},
		{"float32", float32(2), 2.0, false},
		{"integer_text", "1", 1.0, false},
		{"fraction_text", "2.75", 2.75, false},
		{"trailing_garbage", "1-foo", 0, true},
		{"empty_text", "", 0, true},
		{"int_rejected", 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast(Float, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCast)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCastBoolean(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    bool
		wantErr bool
	}{
		{"bool", true, true, false},
		{"literal_true", "true", true, false},
		{"literal_1", "1", true, false},
		{"literal_false", "false", false, false},
		{"literal_0", "0", false, false},
		{"other_text", "whatever", false, true},
		{"cased_text", "TRUE", false, true},
		{"int_rejected", 1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast(Boolean, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCast)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCastString(t *testing.T) {
	got, err := Cast(String, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = Cast(String, 5)
	assert.ErrorIs(t, err, ErrCast)
}

func TestCastBinary(t *testing.T) {
	got, err := Cast(Binary, []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)

	got, err = Cast(Binary, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	_, err = Cast(Binary, 5)
	assert.ErrorIs(t, err, ErrCast)
}

func TestCastUUID(t *testing.T) {
	id := uuid.MustParse("8ee8cc2e-6b06-4b73-a3b1-9fbb0d1d5b18")

	got, err := Cast(UUID, id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// Text is not coerced by the basic kind; that is TextUUID's job.
	_, err = Cast(UUID, id.String())
	assert.ErrorIs(t, err, ErrCast)
}

func TestCastDecimal(t *testing.T) {
	got, err := Cast(Decimal, "4.50")
	require.NoError(t, err)
	d, ok := got.(*apd.Decimal)
	require.True(t, ok)
	assert.Equal(t, "4.50", d.String())

	existing := apd.New(15, -1) // 1.5
	got, err = Cast(Decimal, existing)
	require.NoError(t, err)
	assert.Same(t, existing, got)

	_, err = Cast(Decimal, "not-a-number")
	assert.ErrorIs(t, err, ErrCast)

	_, err = Cast(Decimal, 1.5)
	assert.ErrorIs(t, err, ErrCast)
}

func TestCastCalendarKinds(t *testing.T) {
	now := time.Now()
	for _, typ := range []Type{DateTime, Time, Date} {
		t.Run(typ.String(), func(t *testing.T) {
			got, err := Cast(typ, now)
			require.NoError(t, err)
			assert.Equal(t, now, got)

			// No text parsing for calendar kinds.
			_, err = Cast(typ, "2024-01-02")
			assert.ErrorIs(t, err, ErrCast)
		})
	}
}

func TestCastAnyPassesThrough(t *testing.T) {
	for _, v := range []any{1, "x", []any{1}, 3.5} {
		got, err := Cast(Any, v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCastArray(t *testing.T) {
	t.Run("element_wise_in_order", func(t *testing.T) {
		got, err := Cast(Array(Integer), []any{"1", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
	})

	t.Run("fail_fast", func(t *testing.T) {
		_, err := Cast(Array(Integer), []any{"1", "2", "x"})
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Cast(Array(Integer), []any{})
		require.NoError(t, err)
		assert.Equal(t, []any{}, got)
	})

	t.Run("nil_elements_pass", func(t *testing.T) {
		got, err := Cast(Array(Integer), []any{nil, "4"})
		require.NoError(t, err)
		assert.Equal(t, []any{nil, int64(4)}, got)
	})

	t.Run("not_a_sequence", func(t *testing.T) {
		_, err := Cast(Array(Integer), "1,2,3")
		assert.ErrorIs(t, err, ErrCast)
	})
}

// countingCustom records how Cast delegated, and fails on demand with
// its own error to prove the engine propagates it unchanged.
type countingCustom struct {
	calls *int
	fail  error
}

func (c countingCustom) Underlying() Type { return Integer }

func (c countingCustom) Cast(value any) (any, error) {
	*c.calls++
	if c.fail != nil {
		return nil, c.fail
	}
	return value, nil
}

func (c countingCustom) Load(value any) (any, error) { return value, nil }
func (c countingCustom) Dump(value any) (any, error) { return value, nil }
func (c countingCustom) IsBlank(value any) bool      { return false }

func TestCastCustomDelegation(t *testing.T) {
	t.Run("result_returned_unchanged", func(t *testing.T) {
		calls := 0
		typ := Custom(countingCustom{calls: &calls})
		got, err := Cast(typ, "5")
		require.NoError(t, err)
		assert.Equal(t, "5", got, "engine adds nothing to the delegate's result")
		assert.Equal(t, 1, calls)
	})

	t.Run("failure_propagates_unchanged", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		typ := Custom(countingCustom{calls: &calls, fail: boom})
		_, err := Cast(typ, "5")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil_never_delegated", func(t *testing.T) {
		calls := 0
		typ := Custom(countingCustom{calls: &calls, fail: errors.New("boom")})
		got, err := Cast(typ, nil)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("array_of_custom_fails_fast", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		typ := Array(Custom(countingCustom{calls: &calls, fail: boom}))
		_, err := Cast(typ, []any{"a", "b", "c"})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls, "remaining elements not attempted")
	})
}
