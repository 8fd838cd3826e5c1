package ecto

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a Type descriptor. The basic kinds
// form a closed set; extending the engine with new value semantics
// happens through KindCustom, never by adding basic kinds at runtime.
type Kind uint8

const (
	// KindAny matches every type and passes every value through.
	KindAny Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindBinary
	KindUUID
	KindDecimal
	KindDateTime
	KindTime
	KindDate

	// KindArray is the single composite shape, "array of element".
	KindArray

	// KindCustom delegates to a CustomType implementation.
	KindCustom
)

var kindNames = map[Kind]string{
	KindAny:      "any",
	KindInteger:  "integer",
	KindFloat:    "float",
	KindBoolean:  "boolean",
	KindString:   "string",
	KindBinary:   "binary",
	KindUUID:     "uuid",
	KindDecimal:  "decimal",
	KindDateTime: "datetime",
	KindTime:     "time",
	KindDate:     "date",
	KindArray:    "array",
	KindCustom:   "custom",
}

// String returns the descriptor name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Type is an immutable descriptor identifying a value type. It is
// exactly one of three shapes: a basic kind, an array of an element
// type, or a custom type carrying a CustomType implementation.
//
// The zero value is Any. Descriptors are small values; pass them by
// value and compare basics with ==.
type Type struct {
	kind   Kind
	elem   *Type
	custom CustomType
}

// Basic type descriptors. These are the engine's closed enumeration.
var (
	Any      = Type{kind: KindAny}
	Integer  = Type{kind: KindInteger}
	Float    = Type{kind: KindFloat}
	Boolean  = Type{kind: KindBoolean}
	String   = Type{kind: KindString}
	Binary   = Type{kind: KindBinary}
	UUID     = Type{kind: KindUUID}
	Decimal  = Type{kind: KindDecimal}
	DateTime = Type{kind: KindDateTime}
	Time     = Type{kind: KindTime}
	Date     = Type{kind: KindDate}
)

// Array returns the composite descriptor "array of elem".
func Array(elem Type) Type {
	return Type{kind: KindArray, elem: &elem}
}

// Custom returns a descriptor delegating to the given implementation.
// impl must be non-nil; conversions through a nil implementation
// panic, which is a caller bug rather than a conversion failure.
func Custom(impl CustomType) Type {
	return Type{kind: KindCustom, custom: impl}
}

// Kind returns the descriptor's shape tag.
func (t Type) Kind() Kind { return t.kind }

// Elem returns the element descriptor of an array type, and Any for
// every other shape.
func (t Type) Elem() Type {
	if t.kind == KindArray && t.elem != nil {
		return *t.elem
	}
	return Any
}

// CustomImpl returns the delegate of a custom descriptor, or nil for
// basic and array shapes.
func (t Type) CustomImpl() CustomType { return t.custom }

// IsPrimitive reports whether the descriptor is handled by built-in
// logic rather than delegated. This is an outer-tag test only: every
// basic kind is primitive, and every array is primitive regardless of
// its element type.
func (t Type) IsPrimitive() bool {
	return t.kind != KindCustom
}

// String returns the textual descriptor form, e.g. "integer" or
// "array<string>". Custom descriptors render their implementation's
// Stringer when present, otherwise "custom".
func (t Type) String() string {
	switch t.kind {
	case KindArray:
		return "array<" + t.Elem().String() + ">"
	case KindCustom:
		if s, ok := t.custom.(fmt.Stringer); ok {
			return s.String()
		}
		return "custom"
	default:
		return t.kind.String()
	}
}

// basicByName holds the parseable basic descriptors. Custom types
// have no textual form; they are constructed in code.
var basicByName = map[string]Type{
	"any":      Any,
	"integer":  Integer,
	"float":    Float,
	"boolean":  Boolean,
	"string":   String,
	"binary":   Binary,
	"uuid":     UUID,
	"decimal":  Decimal,
	"datetime": DateTime,
	"time":     Time,
	"date":     Date,
}

// ParseType parses the textual descriptor form produced by
// Type.String for basic and array descriptors: a basic kind name, or
// "array<name>". Array elements may nest.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if t, ok := basicByName[s]; ok {
		return t, nil
	}
	if inner, ok := strings.CutPrefix(s, "array<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return Type{}, fmt.Errorf("unterminated array type %q", s)
		}
		elem, err := ParseType(inner)
		if err != nil {
			return Type{}, err
		}
		return Array(elem), nil
	}
	return Type{}, fmt.Errorf("unknown type %q", s)
}
