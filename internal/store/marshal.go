package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/geemus/ecto"
)

// encodeNative serializes a storage-native value to JSON text. Every
// native representation the engine produces marshals directly:
// scalars as JSON scalars, binaries as base64, uuid/decimal through
// their text forms, calendar tuples as objects. nil stays NULL.
func encodeNative(native any) (any, error) {
	if native == nil {
		return nil, nil
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("encode native: %w", err)
	}
	return string(data), nil
}

// decodeNative parses stored JSON text back into the storage-native
// representation for the type, ready for ecto.Load. Decoding is
// type-directed: JSON alone cannot distinguish an int64 from a
// float64 or a base64 string from text.
func decodeNative(t ecto.Type, encoded sql.NullString) (any, error) {
	if !encoded.Valid {
		return nil, nil
	}
	return decodeJSON(t, json.RawMessage(encoded.String))
}

func decodeJSON(t ecto.Type, raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	switch t.Kind() {
	case ecto.KindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			v, err := decodeJSON(t.Elem(), elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ecto.KindCustom:
		// A custom type's native form has the shape of its
		// underlying basic type.
		return decodeJSON(t.CustomImpl().Underlying(), raw)
	case ecto.KindInteger:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode integer: %w", err)
		}
		return n, nil
	case ecto.KindFloat:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("decode float: %w", err)
		}
		return f, nil
	case ecto.KindBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode boolean: %w", err)
		}
		return b, nil
	case ecto.KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode string: %w", err)
		}
		return s, nil
	case ecto.KindBinary:
		var b []byte
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode binary: %w", err)
		}
		return b, nil
	case ecto.KindUUID:
		var u uuid.UUID
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decode uuid: %w", err)
		}
		return u, nil
	case ecto.KindDecimal:
		d := new(apd.Decimal)
		if err := json.Unmarshal(raw, d); err != nil {
			return nil, fmt.Errorf("decode decimal: %w", err)
		}
		return d, nil
	case ecto.KindDate:
		var p ecto.DateParts
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode date: %w", err)
		}
		return p, nil
	case ecto.KindTime:
		var p ecto.TimeParts
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode time: %w", err)
		}
		return p, nil
	case ecto.KindDateTime:
		var p ecto.DateTimeParts
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode datetime: %w", err)
		}
		return p, nil
	default: // KindAny
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode value: %w", err)
		}
		return v, nil
	}
}
