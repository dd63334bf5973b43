package goCell

import "errors"

var (
	// ErrBrandMismatch is an exported constant or variable used by the cell permission protocol.
	ErrBrandMismatch = errors.New("brand mismatch")
	// ErrExclusiveHeld is an exported constant or variable used by the cell permission protocol.
	ErrExclusiveHeld = errors.New("exclusive accessor already held")
	// ErrSharedHeld is an exported constant or variable used by the cell permission protocol.
	ErrSharedHeld = errors.New("shared accessor already held")
	// ErrTokenRetired is an exported constant or variable used by the cell permission protocol.
	ErrTokenRetired = errors.New("token retired")
	// ErrAccessorReleased is an exported constant or variable used by the cell permission protocol.
	ErrAccessorReleased = errors.New("accessor released")
	// ErrCellConsumed is an exported constant or variable used by the cell permission protocol.
	ErrCellConsumed = errors.New("cell consumed")
	// ErrCellsAliased is an exported constant or variable used by the cell permission protocol.
	ErrCellsAliased = errors.New("cells must be distinct")
	// ErrCursorExhausted is an exported constant or variable used by the cell permission protocol.
	ErrCursorExhausted = errors.New("cursor exhausted")
	// ErrNilToken is an exported constant or variable used by the cell permission protocol.
	ErrNilToken = errors.New("nil token")
	// ErrNilCell is an exported constant or variable used by the cell permission protocol.
	ErrNilCell = errors.New("nil cell")
	// ErrNilAccessor is an exported constant or variable used by the cell permission protocol.
	ErrNilAccessor = errors.New("nil accessor")
)
