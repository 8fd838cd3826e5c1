package ecto

// CustomType is the capability set an external type implements to
// extend the engine. The engine never inspects a custom type's
// canonical representation; it dispatches these five operations and
// propagates their results unchanged.
//
// Contracts:
//   - Underlying must return a basic descriptor; it tells Match (and
//     any storage layer) what shape backs the custom type.
//   - IsBlank is called only on values the type's own Cast or Load
//     already produced.
//   - Cast, Load, and Dump are never called with nil: the engine
//     passes nil through before delegating, and custom types cannot
//     override that.
//
// The engine does not verify that the five operations are mutually
// consistent (for example that Load output is acceptable to Dump);
// that is the implementer's responsibility.
type CustomType interface {
	// Underlying returns the basic type this custom type is backed by.
	Underlying() Type

	// Cast converts untrusted external input to the canonical form.
	Cast(value any) (any, error)

	// Load converts a storage-native value to the canonical form.
	Load(value any) (any, error)

	// Dump converts a canonical value to the storage-native form.
	Dump(value any) (any, error)

	// IsBlank reports whether a canonical value counts as empty for
	// presence validation.
	IsBlank(value any) bool
}
