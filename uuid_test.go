package ecto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "2d4c8ed0-9b10-4b73-9f0e-1a2b3c4d5e6f"

func TestTextUUIDCast(t *testing.T) {
	typ := Custom(TextUUID{})

	got, err := Cast(typ, sampleUUID)
	require.NoError(t, err)
	assert.Equal(t, sampleUUID, got)

	// Uppercase input normalizes to the canonical lowercase text.
	got, err = Cast(typ, "2D4C8ED0-9B10-4B73-9F0E-1A2B3C4D5E6F")
	require.NoError(t, err)
	assert.Equal(t, sampleUUID, got)

	got, err = Cast(typ, uuid.MustParse(sampleUUID))
	require.NoError(t, err)
	assert.Equal(t, sampleUUID, got)

	_, err = Cast(typ, "not-a-uuid")
	assert.ErrorIs(t, err, ErrCast)

	_, err = Cast(typ, 5)
	assert.ErrorIs(t, err, ErrCast)
}

func TestTextUUIDLoadDump(t *testing.T) {
	typ := Custom(TextUUID{})
	id := uuid.MustParse(sampleUUID)

	got, err := Load(typ, id)
	require.NoError(t, err)
	assert.Equal(t, sampleUUID, got)

	got, err = Load(typ, [16]byte(id))
	require.NoError(t, err)
	assert.Equal(t, sampleUUID, got)

	_, err = Load(typ, sampleUUID)
	assert.ErrorIs(t, err, ErrLoad, "text is not a storage form")

	got, err = Dump(typ, sampleUUID)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = Dump(typ, "not-a-uuid")
	assert.ErrorIs(t, err, ErrDump)

	_, err = Dump(typ, id)
	assert.ErrorIs(t, err, ErrDump, "canonical form is text, not uuid.UUID")
}

func TestTextUUIDMatchesUnderlying(t *testing.T) {
	assert.True(t, Match(Custom(TextUUID{}), UUID))
	assert.False(t, Match(Custom(TextUUID{}), Binary))
}

func TestTextUUIDBlank(t *testing.T) {
	typ := Custom(TextUUID{})
	assert.True(t, IsBlank(typ, ""))
	assert.False(t, IsBlank(typ, sampleUUID))
}
