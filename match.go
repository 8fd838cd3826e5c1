package ecto

// Match reports whether a value declared as t fits the expected
// primitive type. The second argument must be primitive (a basic or
// array descriptor); behavior on a custom second argument is
// unspecified and callers must not rely on it.
//
// Rules, in order:
//  1. Any on either side matches unconditionally.
//  2. A primitive t matches structurally: arrays match arrays with
//     matching element types, basics match identical basics.
//  3. A custom t is resolved to its Underlying basic type, then rule
//     2 applies to the resolved type.
//
// Matching is total: there is no error case, only false.
func Match(t, primitive Type) bool {
	if t.kind == KindAny || primitive.kind == KindAny {
		return true
	}
	if !t.IsPrimitive() {
		underlying := t.custom.Underlying()
		if !underlying.IsPrimitive() {
			// Contract violation: Underlying must resolve to a
			// primitive descriptor. Resolved once, never chased.
			return false
		}
		return Match(underlying, primitive)
	}
	if t.kind == KindArray || primitive.kind == KindArray {
		if t.kind != primitive.kind {
			return false
		}
		// Element comparison reuses the full relation so wildcard
		// elements and custom elements resolve the same way at any
		// depth.
		return Match(t.Elem(), primitive.Elem())
	}
	return t.kind == primitive.kind
}
