// Package ecto implements a value type-coercion engine: conversions
// between external input, a canonical in-memory form, and a
// storage-native form, dispatched over type descriptors.
//
// A Type descriptor is one of three shapes: a basic kind (integer,
// string, uuid, ...), an array of an element type, or a custom type
// delegating to a CustomType implementation. Dispatch is a switch on
// the descriptor's kind, never reflection.
//
// The engine exposes three conversion directions with deliberately
// different trust levels:
//   - Cast coerces untrusted external input (text parsing allowed)
//   - Load converts storage-native values to canonical form (strict)
//   - Dump converts canonical values to storage-native form (strict)
//
// plus two total predicates, Match (type compatibility) and IsBlank
// (presence checking).
//
// Every operation is a pure function of its arguments. The package
// holds no mutable state and is safe for unsynchronized concurrent
// use.
package ecto
