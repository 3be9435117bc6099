package sheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SelectSheet implements SheetRepository.SelectSheet with SelectSheet.
func (r *SheetRepositoryImpl) SelectSheet(wb *entity.Workbook, name string) (entity.Sheet, error) {
	return SelectSheet(wb, name)
}

// SelectSheet picks the sheet called name. An exact match wins, then a
// case-insensitive one, then the closest fuzzy match. An empty name selects
// the first sheet.
func SelectSheet(wb *entity.Workbook, name string) (entity.Sheet, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return entity.Sheet{}, types.ErrNoSheets
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return wb.Sheets[0], nil
	}

	for _, s := range wb.Sheets {
		if s.Name == name {
			return s, nil
		}
	}
	for _, s := range wb.Sheets {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	ranks := fuzzy.RankFindFold(name, wb.SheetNames())
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return wb.Sheets[ranks[0].OriginalIndex], nil
	}

	return entity.Sheet{}, fmt.Errorf("%w: %q (available: %s)", types.ErrSheetNotFound, name,
		strings.Join(wb.SheetNames(), ", "))
}
