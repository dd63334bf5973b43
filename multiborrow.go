package goCell

// ReadAll reads any number of same-brand cells as a single operation,
// returning their values in argument order. Either accessor kind is
// accepted. Reading the same cell twice is allowed; shared views alias
// freely.
func ReadAll[T any](acc Accessor, cells ...*Cell[T]) ([]T, error) {
	out := make([]T, len(cells))
	for i, c := range cells {
		v, err := c.Read(acc)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteAll returns simultaneous mutable views of any number of cells under
// one exclusive accessor. The cells must be pairwise distinct: two
// arguments aliasing the same cell would produce two mutable views of one
// value, so the duplicate is rejected with [ErrCellsAliased].
func WriteAll[T any](acc *ExclusiveAccessor, cells ...*Cell[T]) ([]*T, error) {
	seen := make(map[*Cell[T]]struct{}, len(cells))
	for _, c := range cells {
		if c == nil {
			return nil, ErrNilCell
		}
		if _, dup := seen[c]; dup {
			if tok := acc.owner(); tok != nil {
				tok.report(ViolationCellAliasing, "WriteAll", "")
			}
			return nil, ErrCellsAliased
		}
		seen[c] = struct{}{}
	}

	out := make([]*T, len(cells))
	for i, c := range cells {
		p, err := c.Write(acc)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
