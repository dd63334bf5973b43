package goCell

import (
	"sync/atomic"

	"github.com/MrEthical07/goCell/internal"
)

// Cell holds exactly one value of type T behind an aliasing-tolerant
// wrapper. The cell carries no mutation capability of its own: pointers to
// it may be handed out without limit, and every content access goes through
// an accessor checked out of the [Token] whose brand the cell was created
// under.
//
// A Cell performs no locking. The exclusivity of its matching token is what
// makes concurrent use sound; an access presenting the wrong brand is
// rejected with [ErrBrandMismatch].
//
//	Docs: docs/cell.md
type Cell[T any] struct {
	brand    internal.BrandID
	consumed atomic.Bool
	value    T
}

// NewCell wraps v in a cell branded by tok. Creating a cell requires only a
// reference to the token, not an accessor: construction consumes no
// capability. A retired token no longer brands cells.
func NewCell[T any](tok *Token, v T) (*Cell[T], error) {
	if tok == nil {
		return nil, ErrNilToken
	}
	if tok.retired.Load() {
		tok.report(ViolationUseAfterRetire, "NewCell", "")
		tok.count(MetricUseAfterRetire)
		return nil, ErrTokenRetired
	}

	return &Cell[T]{brand: tok.brand, value: v}, nil
}

// Read returns a copy of the stored value. Either accessor kind of the
// matching brand is accepted.
func (c *Cell[T]) Read(acc Accessor) (T, error) {
	var zero T

	if c == nil {
		return zero, ErrNilCell
	}
	if acc == nil {
		return zero, ErrNilAccessor
	}

	brand, err := acc.grant()
	if err != nil {
		return zero, err
	}
	tok := acc.owner()
	if brand != c.brand {
		tok.report(ViolationBrandMismatch, "Read", "cell brand "+c.brand.String())
		tok.count(MetricBrandMismatch)
		return zero, ErrBrandMismatch
	}
	if c.consumed.Load() {
		tok.report(ViolationCellConsumed, "Read", "")
		tok.count(MetricConsumedAccess)
		return zero, ErrCellConsumed
	}

	tok.count(MetricCellRead)
	return c.value, nil
}

// Write returns a pointer to the stored value for in-place mutation. The
// pointer is valid until acc is released; it must not be retained past the
// accessor's lifetime.
func (c *Cell[T]) Write(acc *ExclusiveAccessor) (*T, error) {
	if c == nil {
		return nil, ErrNilCell
	}

	brand, err := acc.grant()
	if err != nil {
		return nil, err
	}
	tok := acc.owner()
	if brand != c.brand {
		tok.report(ViolationBrandMismatch, "Write", "cell brand "+c.brand.String())
		tok.count(MetricBrandMismatch)
		return nil, ErrBrandMismatch
	}
	if c.consumed.Load() {
		tok.report(ViolationCellConsumed, "Write", "")
		tok.count(MetricConsumedAccess)
		return nil, ErrCellConsumed
	}

	tok.count(MetricCellWrite)
	return &c.value, nil
}

// Set stores v in the cell, discarding the previous value.
func (c *Cell[T]) Set(acc *ExclusiveAccessor, v T) error {
	p, err := c.Write(acc)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Replace stores v in the cell and returns the previous value.
func (c *Cell[T]) Replace(acc *ExclusiveAccessor, v T) (T, error) {
	var zero T

	p, err := c.Write(acc)
	if err != nil {
		return zero, err
	}
	if tok := acc.owner(); tok != nil {
		tok.count(MetricCellReplace)
	}

	prev := *p
	*p = v
	return prev, nil
}

// IntoInner consumes the cell and returns its value without any token:
// unique ownership of the cell itself substitutes for the brand proof. The
// caller asserts no other live alias exists; the cell is marked consumed
// atomically, so every later access through any alias, and any second
// IntoInner, reports [ErrCellConsumed] rather than observing a moved-from
// value.
func (c *Cell[T]) IntoInner() (T, error) {
	var zero T

	if c == nil {
		return zero, ErrNilCell
	}
	if !c.consumed.CompareAndSwap(false, true) {
		return zero, ErrCellConsumed
	}

	v := c.value
	c.value = zero
	return v, nil
}
