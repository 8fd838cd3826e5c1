package ecto

import (
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Load converts a storage-native value into the canonical in-memory
// representation for t. nil passes through for every type.
//
// Load operates at a trusted boundary: unlike Cast it attempts no
// coercion. The calendar kinds convert from their tuple form; every
// other basic kind requires the value to already be in the canonical
// representation, and anything else fails with ErrLoad. Custom
// descriptors delegate to the type's own Load, which need not mirror
// its Cast.
func Load(t Type, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch t.kind {
	case KindAny:
		return value, nil
	case KindArray:
		return mapElements(t.Elem(), value, Load, ErrLoad)
	case KindCustom:
		return t.custom.Load(value)
	case KindDate:
		if p, ok := value.(DateParts); ok {
			return loadDate(p)
		}
		return nil, ErrLoad
	case KindTime:
		if p, ok := value.(TimeParts); ok {
			return loadTime(p)
		}
		return nil, ErrLoad
	case KindDateTime:
		if p, ok := value.(DateTimeParts); ok {
			return loadDateTime(p)
		}
		return nil, ErrLoad
	default:
		if !isCanonical(t.kind, value) {
			return nil, ErrLoad
		}
		return value, nil
	}
}

// Dump converts a canonical in-memory value into the storage-native
// representation for t. nil passes through for every type.
//
// Dump is Load's structural mirror: the calendar kinds convert to
// their tuple form, every other basic kind requires the exact
// canonical representation, and custom descriptors delegate.
func Dump(t Type, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch t.kind {
	case KindAny:
		return value, nil
	case KindArray:
		return mapElements(t.Elem(), value, Dump, ErrDump)
	case KindCustom:
		return t.custom.Dump(value)
	case KindDate:
		if ts, ok := value.(time.Time); ok {
			return dumpDate(ts), nil
		}
		return nil, ErrDump
	case KindTime:
		if ts, ok := value.(time.Time); ok {
			return dumpTime(ts), nil
		}
		return nil, ErrDump
	case KindDateTime:
		if ts, ok := value.(time.Time); ok {
			return dumpDateTime(ts), nil
		}
		return nil, ErrDump
	default:
		if !isCanonical(t.kind, value) {
			return nil, ErrDump
		}
		return value, nil
	}
}

// isCanonical reports whether value is exactly the canonical Go
// representation for a non-calendar basic kind. No widening: the
// trusted boundaries hand the engine int64, not int.
func isCanonical(k Kind, value any) bool {
	switch k {
	case KindInteger:
		_, ok := value.(int64)
		return ok
	case KindFloat:
		_, ok := value.(float64)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBinary:
		_, ok := value.([]byte)
		return ok
	case KindUUID:
		_, ok := value.(uuid.UUID)
		return ok
	case KindDecimal:
		_, ok := value.(*apd.Decimal)
		return ok
	default:
		return false
	}
}
