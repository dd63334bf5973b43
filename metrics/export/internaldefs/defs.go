package internaldefs

import (
	goCell "github.com/MrEthical07/goCell"
)

// CounterDef defines a public type used by goCell APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goCell.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the cell permission protocol.
var CounterDefs = []CounterDef{
	{ID: goCell.MetricSharedBorrow, Name: "gocell_shared_borrow_total", Help: "Shared accessor checkouts."},
	{ID: goCell.MetricExclusiveBorrow, Name: "gocell_exclusive_borrow_total", Help: "Exclusive accessor checkouts."},
	{ID: goCell.MetricBorrowConflict, Name: "gocell_borrow_conflict_total", Help: "Borrow attempts rejected by the exclusive-xor-shared rule."},
	{ID: goCell.MetricBrandMismatch, Name: "gocell_brand_mismatch_total", Help: "Accesses rejected for presenting the wrong brand."},
	{ID: goCell.MetricCellRead, Name: "gocell_cell_read_total", Help: "Cell read operations."},
	{ID: goCell.MetricCellWrite, Name: "gocell_cell_write_total", Help: "Cell write operations."},
	{ID: goCell.MetricCellReplace, Name: "gocell_cell_replace_total", Help: "Cell replace operations."},
	{ID: goCell.MetricConsumedAccess, Name: "gocell_consumed_access_total", Help: "Accesses rejected because the cell was already consumed."},
	{ID: goCell.MetricUseAfterRetire, Name: "gocell_use_after_retire_total", Help: "Operations attempted on a retired token."},
}
