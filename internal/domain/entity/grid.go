package entity

// RawGrid holds the unprocessed cell contents of one sheet. Row 0 is the
// header row; empty cells are empty strings.
type RawGrid [][]string

// Header returns the header row, or nil for an empty grid.
func (g RawGrid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Cell returns the value at (row, col), or "" when out of range.
func (g RawGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Sheet is a named grid inside a workbook.
type Sheet struct {
	Name string
	Grid RawGrid
}

// Workbook is the parsed content of one uploaded spreadsheet file.
type Workbook struct {
	Path   string
	Sheets []Sheet
}

// SheetNames lists sheet names in workbook order.
func (w Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// ColumnIndex is an optional position within the header row.
type ColumnIndex struct {
	Pos   int
	Found bool
}

// At returns a found ColumnIndex.
func At(pos int) ColumnIndex {
	return ColumnIndex{Pos: pos, Found: true}
}

// Absent is the zero ColumnIndex.
var Absent = ColumnIndex{}

// Get returns the position and whether it was resolved.
func (c ColumnIndex) Get() (int, bool) {
	return c.Pos, c.Found
}

// ColumnIndexSet binds the semantic columns of a usage export.
type ColumnIndexSet struct {
	StartTime ColumnIndex
	EndTime   ColumnIndex
	Category  ColumnIndex
	Amount    ColumnIndex
}

// Empty reports whether no column at all was resolved.
func (s ColumnIndexSet) Empty() bool {
	return !s.StartTime.Found && !s.EndTime.Found && !s.Category.Found && !s.Amount.Found
}
