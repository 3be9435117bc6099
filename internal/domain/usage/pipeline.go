package usage

import "github.com/diillson/usage-statement-go/internal/domain/entity"

// Result bundles the outputs of one pass over a grid.
type Result struct {
	Columns    entity.ColumnIndexSet
	Extraction entity.Extraction
	Range      entity.DateRange
}

// Process runs column resolution, extraction and the date range over grid.
// It keeps no state between calls.
func Process(grid entity.RawGrid, filter *entity.DateFilter) Result {
	cols := Resolve(grid.Header())
	ext := Extract(grid, cols, filter)
	return Result{
		Columns:    cols,
		Extraction: ext,
		Range:      Range(ext.Rows),
	}
}
