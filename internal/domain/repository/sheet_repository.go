package repository

import "github.com/diillson/usage-statement-go/internal/domain/entity"

// SheetRepository defines the interface for reading usage spreadsheets.
type SheetRepository interface {
	// Open reads every sheet of the workbook at path as raw text cells.
	Open(path string) (*entity.Workbook, error)
	// SelectSheet picks a sheet by name; an empty name selects the first one.
	SelectSheet(wb *entity.Workbook, name string) (entity.Sheet, error)
}
