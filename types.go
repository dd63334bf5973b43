package goCell

// AccessMode represents the access discipline an accessor grants over the
// cells of its brand.
//
//	Docs: docs/token.md
type AccessMode uint8

const (
	// ModeNone is an exported constant or variable used by the cell permission protocol.
	ModeNone AccessMode = iota
	// ModeShared is an exported constant or variable used by the cell permission protocol.
	ModeShared
	// ModeExclusive is an exported constant or variable used by the cell permission protocol.
	ModeExclusive
)

// String returns a human-readable representation of the access mode.
func (m AccessMode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeExclusive:
		return "exclusive"
	case ModeNone:
		return "none"
	default:
		return "?"
	}
}

// ViolationKind classifies a runtime-detected misuse of the protocol. Every
// kind corresponds to a program the reference design would reject before
// execution.
//
//	Docs: docs/audit.md
type ViolationKind uint8

const (
	// ViolationBrandMismatch is an exported constant or variable used by the cell permission protocol.
	ViolationBrandMismatch ViolationKind = iota
	// ViolationBorrowConflict is an exported constant or variable used by the cell permission protocol.
	ViolationBorrowConflict
	// ViolationUseAfterRetire is an exported constant or variable used by the cell permission protocol.
	ViolationUseAfterRetire
	// ViolationUseAfterRelease is an exported constant or variable used by the cell permission protocol.
	ViolationUseAfterRelease
	// ViolationCellConsumed is an exported constant or variable used by the cell permission protocol.
	ViolationCellConsumed
	// ViolationCellAliasing is an exported constant or variable used by the cell permission protocol.
	ViolationCellAliasing
)

// String returns the audit event name for the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case ViolationBrandMismatch:
		return "brand_mismatch"
	case ViolationBorrowConflict:
		return "borrow_conflict"
	case ViolationUseAfterRetire:
		return "use_after_retire"
	case ViolationUseAfterRelease:
		return "use_after_release"
	case ViolationCellConsumed:
		return "cell_consumed"
	case ViolationCellAliasing:
		return "cell_aliasing"
	default:
		return "unknown"
	}
}
