package ecto

import (
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Cast coerces untrusted external input into the canonical in-memory
// representation for t. nil passes through for every type, before any
// other rule, and custom types cannot override that.
//
// Values already in the canonical representation pass through
// unchanged. Text input is coerced for the integer, float, boolean,
// and decimal kinds only, and only on a full-text match; every other
// representation mismatch fails with ErrCast. Custom descriptors
// delegate entirely to the type's own Cast.
func Cast(t Type, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch t.kind {
	case KindAny:
		return value, nil
	case KindArray:
		return mapElements(t.Elem(), value, Cast, ErrCast)
	case KindCustom:
		return t.custom.Cast(value)
	case KindInteger:
		return castInteger(value)
	case KindFloat:
		return castFloat(value)
	case KindBoolean:
		return castBoolean(value)
	case KindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, ErrCast
	case KindBinary:
		return castBinary(value)
	case KindUUID:
		if u, ok := value.(uuid.UUID); ok {
			return u, nil
		}
		return nil, ErrCast
	case KindDecimal:
		return castDecimal(value)
	case KindDateTime, KindTime, KindDate:
		// The calendar kinds share time.Time as their canonical
		// wrapper. No text parsing here: external date input belongs
		// to a custom type or the caller's parser.
		if ts, ok := value.(time.Time); ok {
			return ts, nil
		}
		return nil, ErrCast
	default:
		return nil, ErrCast
	}
}

// castInteger widens any Go integer to the canonical int64 and parses
// base-10 text. The full input must be consumed: "10.0" or "10 " is a
// failure, not a partial parse.
func castInteger(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, ErrCast
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, ErrCast
		}
		return n, nil
	default:
		return nil, ErrCast
	}
}

func castFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, ErrCast
		}
		return f, nil
	default:
		return nil, ErrCast
	}
}

// castBoolean accepts exactly the literals "true"/"1" and
// "false"/"0"; any other text fails.
func castBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, ErrCast
	default:
		return nil, ErrCast
	}
}

// castBinary accepts byte slices and text. Text converts to its byte
// content, mirroring the strings-are-binaries identity of the source
// semantics.
func castBinary(value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, ErrCast
	}
}

func castDecimal(value any) (any, error) {
	switch v := value.(type) {
	case *apd.Decimal:
		return v, nil
	case string:
		d, _, err := apd.NewFromString(v)
		if err != nil {
			return nil, ErrCast
		}
		return d, nil
	default:
		return nil, ErrCast
	}
}
