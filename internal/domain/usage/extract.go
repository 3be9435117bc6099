package usage

import (
	"sort"
	"strings"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type candidate struct {
	record entity.UsageRecord
	amount decimal.Decimal
	start  time.Time
	dated  bool
}

// Extract turns the data rows of grid into usage records and per-category
// summaries. Rows with a non-positive amount are dropped, duplicates by
// start time keep their first occurrence, the optional filter keeps rows
// whose start time falls inside it, and the result is sorted by start time.
// Rows whose start time cannot be parsed sort last in input order and never
// pass a filter.
func Extract(grid entity.RawGrid, cols entity.ColumnIndexSet, filter *entity.DateFilter) entity.Extraction {
	ext := entity.Extraction{
		Rows:      []entity.UsageRecord{},
		Summaries: []entity.CategorySummary{},
	}
	if len(grid) <= 1 {
		return ext
	}

	seen := make(map[string]struct{}, len(grid))
	candidates := make([]candidate, 0, len(grid)-1)

	for r := 1; r < len(grid); r++ {
		ext.Scanned++

		amount := ParseAmountDecimal(cellAt(grid, r, cols.Amount))
		if !amount.IsPositive() {
			ext.ZeroAmount++
			continue
		}

		label := entity.Placeholder
		if v := cellAt(grid, r, cols.Category); strings.TrimSpace(v) != "" {
			label = MapEventPath(v)
		}

		raw := amount.InexactFloat64()
		start := timeAt(grid, r, cols.StartTime)

		if _, dup := seen[start]; dup {
			ext.Duplicates++
			continue
		}
		seen[start] = struct{}{}

		t, dated := ParseDisplayTime(start)
		if filter != nil && (!dated || !filter.Contains(t)) {
			ext.OutsideFilter++
			continue
		}
		if !dated {
			ext.Undated++
		}

		candidates = append(candidates, candidate{
			record: entity.UsageRecord{
				StartTime:     start,
				EndTime:       timeAt(grid, r, cols.EndTime),
				Category:      label,
				RawAmount:     raw,
				DisplayAmount: ConvertLabel(raw, label).Display,
			},
			amount: amount,
			start:  t,
			dated:  dated,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.dated != b.dated {
			return a.dated
		}
		return a.dated && a.start.Before(b.start)
	})

	for _, c := range candidates {
		ext.Rows = append(ext.Rows, c.record)
	}
	ext.Summaries = summarize(candidates)

	return ext
}

// summarize aggregates per category in first-seen order, summing the
// decimal amounts before converting the total once.
func summarize(candidates []candidate) []entity.CategorySummary {
	order := []string{}
	totals := map[string]decimal.Decimal{}

	for _, c := range candidates {
		cat := c.record.Category
		if _, ok := totals[cat]; !ok {
			order = append(order, cat)
			totals[cat] = decimal.Zero
		}
		totals[cat] = totals[cat].Add(c.amount)
	}

	summaries := make([]entity.CategorySummary, 0, len(order))
	for _, cat := range order {
		total := totals[cat].InexactFloat64()
		summaries = append(summaries, entity.CategorySummary{
			Category:     cat,
			Total:        total,
			DisplayTotal: ConvertLabel(total, cat).Display,
		})
	}
	return summaries
}

func cellAt(grid entity.RawGrid, row int, col entity.ColumnIndex) string {
	pos, ok := col.Get()
	if !ok {
		return ""
	}
	return grid.Cell(row, pos)
}

func timeAt(grid entity.RawGrid, row int, col entity.ColumnIndex) string {
	return FormatTimestamp(cellAt(grid, row, col))
}
