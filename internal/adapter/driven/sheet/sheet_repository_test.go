package sheet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/usage"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "usage.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenXLSX(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Usage": {
			{"Start Time", "End Time", "Usage Type", "Amount"},
			{"2024-01-01 10:00", "2024-01-01 10:02", "Serviço de Voz", 125},
		},
		"Notes": {{"nothing here"}},
	}, "Usage", "Notes")

	wb, err := NewSheetRepository().Open(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Usage", "Notes"}, wb.SheetNames())
	grid := wb.Sheets[0].Grid
	require.Len(t, grid, 2)
	assert.Equal(t, "Amount", grid.Cell(0, 3))
	assert.Equal(t, "125", grid.Cell(1, 3))
	assert.Equal(t, "Serviço de Voz", grid.Cell(1, 2))
}

func TestOpenXLSXDateCellsAreSerials(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Usage": {
			{"Start Time", "End Time", "Usage Type", "Amount"},
			{
				time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
				time.Date(2024, 1, 15, 10, 35, 0, 0, time.UTC),
				"Serviço de SMS",
				2,
			},
		},
	}, "Usage")

	wb, err := NewSheetRepository().Open(path)
	require.NoError(t, err)

	res := usage.Process(wb.Sheets[0].Grid, nil)
	require.Len(t, res.Extraction.Rows, 1)
	assert.Equal(t, "15/01/2024, 10:30", res.Extraction.Rows[0].StartTime)
	assert.Equal(t, "15/01/2024, 10:35", res.Extraction.Rows[0].EndTime)
	assert.Equal(t, "2 SMS", res.Extraction.Rows[0].DisplayAmount)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSheetRepository().Open(filepath.Join(dir, "missing.xlsx"))
		assert.ErrorIs(t, err, types.ErrUnreadableFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "usage.txt")
		require.NoError(t, os.WriteFile(path, []byte("a,b"), 0o644))
		_, err := NewSheetRepository().Open(path)
		assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		path := filepath.Join(dir, "broken.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))
		_, err := NewSheetRepository().Open(path)
		assert.ErrorIs(t, err, types.ErrUnreadableFile)
	})
}

func TestTrimTrailingEmptyRows(t *testing.T) {
	grid := entity.RawGrid{{"a"}, {}, {"b"}, {" ", ""}, {}}
	assert.Equal(t, entity.RawGrid{{"a"}, {}, {"b"}}, trimTrailingEmptyRows(grid))
	assert.Empty(t, trimTrailingEmptyRows(entity.RawGrid{{""}}))
}

func TestSelectSheet(t *testing.T) {
	wb := &entity.Workbook{Sheets: []entity.Sheet{
		{Name: "Resumo"},
		{Name: "Usage Details"},
		{Name: "usage"},
	}}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty selects first", "", "Resumo"},
		{"exact", "usage", "usage"},
		{"case insensitive", "RESUMO", "Resumo"},
		{"fuzzy", "details", "Usage Details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := SelectSheet(wb, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := SelectSheet(wb, "Faturas")
		assert.ErrorIs(t, err, types.ErrSheetNotFound)
	})

	t.Run("no sheets", func(t *testing.T) {
		_, err := SelectSheet(&entity.Workbook{}, "x")
		assert.ErrorIs(t, err, types.ErrNoSheets)
	})
}
