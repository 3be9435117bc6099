package usage

import (
	"strings"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

// Resolve locates the semantic columns in a header row. For each field the
// first header, left to right, containing the required tokens wins:
//
//	start time: "start" and "time"
//	end time:   "end" and "time"
//	category:   "usage" or "type"
//	amount:     "amount"
//
// Fields with no match stay absent.
func Resolve(header []string) entity.ColumnIndexSet {
	var cols entity.ColumnIndexSet

	for i, cell := range header {
		h := strings.ToLower(strings.TrimSpace(cell))
		if h == "" {
			continue
		}

		if !cols.StartTime.Found && containsAll(h, "start", "time") {
			cols.StartTime = entity.At(i)
		}
		if !cols.EndTime.Found && containsAll(h, "end", "time") {
			cols.EndTime = entity.At(i)
		}
		if !cols.Category.Found && containsAny(h, "usage", "type") {
			cols.Category = entity.At(i)
		}
		if !cols.Amount.Found && strings.Contains(h, "amount") {
			cols.Amount = entity.At(i)
		}
	}

	return cols
}

func containsAll(s string, tokens ...string) bool {
	for _, t := range tokens {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
