package goCell

// Cursor walks a web of same-brand cells (a linked structure) under one
// exclusive accessor, holding a mutable view of exactly one cell at a time.
// Releasing the accessor invalidates the cursor: every subsequent operation
// reports [ErrAccessorReleased].
//
//	Docs: docs/cursor.md
type Cursor[T any] struct {
	acc     *ExclusiveAccessor
	current *Cell[T]
}

// NewCursor positions a cursor on start. The cell's brand must match the
// accessor's.
func NewCursor[T any](acc *ExclusiveAccessor, start *Cell[T]) (*Cursor[T], error) {
	if start == nil {
		return nil, ErrNilCell
	}
	if _, err := start.Write(acc); err != nil {
		return nil, err
	}
	return &Cursor[T]{acc: acc, current: start}, nil
}

// Current returns a mutable view of the cell the cursor is positioned on.
func (cu *Cursor[T]) Current() (*T, error) {
	return cu.current.Write(cu.acc)
}

// MoveTo repositions the cursor on next, brand-checked.
func (cu *Cursor[T]) MoveTo(next *Cell[T]) error {
	if next == nil {
		return ErrNilCell
	}
	if _, err := next.Write(cu.acc); err != nil {
		return err
	}
	cu.current = next
	return nil
}

// Step derives the next cell from the current value and moves to it. fn
// returning nil means the walk found no successor; the cursor stays put and
// Step reports [ErrCursorExhausted].
func (cu *Cursor[T]) Step(fn func(*T) *Cell[T]) error {
	p, err := cu.current.Write(cu.acc)
	if err != nil {
		return err
	}
	next := fn(p)
	if next == nil {
		return ErrCursorExhausted
	}
	return cu.MoveTo(next)
}
