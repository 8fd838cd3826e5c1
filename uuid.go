package ecto

import "github.com/google/uuid"

// TextUUID is a custom type whose canonical form is the lowercase hex
// text of a UUID, backed by the uuid basic kind at the storage
// boundary. It is the reference implementation of the CustomType
// capability set: the built-in uuid kind only passes uuid.UUID values
// through, so accepting text is an extension, not engine behavior.
type TextUUID struct{}

// Underlying identifies the uuid kind as the backing storage shape.
func (TextUUID) Underlying() Type { return UUID }

// Cast accepts UUID text in any case or format uuid.Parse accepts,
// plus uuid.UUID values, producing the canonical lowercase text.
func (TextUUID) Cast(value any) (any, error) {
	switch v := value.(type) {
	case string:
		u, err := uuid.Parse(v)
		if err != nil {
			return nil, ErrCast
		}
		return u.String(), nil
	case uuid.UUID:
		return v.String(), nil
	default:
		return nil, ErrCast
	}
}

// Load accepts the storage forms a uuid column produces: uuid.UUID or
// a raw 16-byte value.
func (TextUUID) Load(value any) (any, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v.String(), nil
	case [16]byte:
		return uuid.UUID(v).String(), nil
	default:
		return nil, ErrLoad
	}
}

// Dump converts canonical text back to a uuid.UUID.
func (TextUUID) Dump(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, ErrDump
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, ErrDump
	}
	return u, nil
}

// IsBlank reports empty text as blank.
func (TextUUID) IsBlank(value any) bool {
	s, ok := value.(string)
	return ok && s == ""
}

// String implements fmt.Stringer for descriptor display.
func (TextUUID) String() string { return "text_uuid" }
