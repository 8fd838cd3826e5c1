package ecto

import "errors"

// Conversion failures are uniform signals with no payload. They are
// expected outcomes, not faults: the engine never wraps them with
// context, and callers are responsible for attaching field/value
// information at their own layer. Custom-type failures propagate
// through the engine unchanged and need not be one of these.
var (
	// ErrCast reports that Cast could not coerce a value.
	ErrCast = errors.New("ecto: value cannot be cast")

	// ErrLoad reports that Load received a value that is not in the
	// storage-native representation for the type.
	ErrLoad = errors.New("ecto: value cannot be loaded")

	// ErrDump reports that Dump received a value that is not in the
	// canonical representation for the type.
	ErrDump = errors.New("ecto: value cannot be dumped")
)
