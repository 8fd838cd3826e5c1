package ecto

// mapElements converts every element of a sequence with convert,
// preserving length and order. It fails fast: the first element
// failure aborts the scan and its error is returned unchanged, with
// no record of which index failed. A value that is not a sequence
// fails with notSeq.
func mapElements(elem Type, value any, convert func(Type, any) (any, error), notSeq error) (any, error) {
	seq, ok := value.([]any)
	if !ok {
		return nil, notSeq
	}
	out := make([]any, 0, len(seq))
	for _, v := range seq {
		converted, err := convert(elem, v)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}
