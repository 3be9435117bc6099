package sheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/repository"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// SheetRepositoryImpl implementa o SheetRepository.
type SheetRepositoryImpl struct{}

// NewSheetRepository cria uma nova implementação do SheetRepository.
func NewSheetRepository() repository.SheetRepository {
	return &SheetRepositoryImpl{}
}

// Open lê todas as planilhas do arquivo. O formato é escolhido pela extensão.
func (r *SheetRepositoryImpl) Open(path string) (*entity.Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)
	}
	defer file.Close()

	var sheets []entity.Sheet
	switch ext {
	case ".xlsx", ".xlsm":
		sheets, err = ReadXLSX(file)
	case ".xls":
		sheets, err = ReadXLS(file)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(sheets) == 0 {
		return nil, types.ErrNoSheets
	}

	return &entity.Workbook{Path: path, Sheets: sheets}, nil
}

// ReadXLSX reads an Office Open XML workbook. Cells are read unformatted so
// date cells arrive as serial numbers and amounts keep their full precision.
func ReadXLSX(reader io.Reader) ([]entity.Sheet, error) {
	f, err := excelize.OpenReader(reader, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]entity.Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet %s: %v", types.ErrUnreadableFile, name, err)
		}
		sheets = append(sheets, entity.Sheet{Name: name, Grid: entity.RawGrid(rows)})
	}

	return sheets, nil
}

// ReadXLS reads a legacy BIFF workbook.
func ReadXLS(reader io.ReadSeeker) ([]entity.Sheet, error) {
	wb, err := xls.OpenReader(reader, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)
	}

	sheets := make([]entity.Sheet, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}

		grid := make(entity.RawGrid, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				grid = append(grid, []string{})
				continue
			}
			cells := make([]string, row.LastCol())
			for c := range cells {
				cells[c] = row.Col(c)
			}
			grid = append(grid, cells)
		}

		sheets = append(sheets, entity.Sheet{Name: ws.Name, Grid: trimTrailingEmptyRows(grid)})
	}

	return sheets, nil
}

func trimTrailingEmptyRows(grid entity.RawGrid) entity.RawGrid {
	end := len(grid)
	for end > 0 && isBlank(grid[end-1]) {
		end--
	}
	return grid[:end]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
