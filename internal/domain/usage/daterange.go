package usage

import (
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

// Range computes the earliest start and the latest end over rows with a
// nonzero amount. Bounds that cannot be determined are "N/A".
func Range(rows []entity.UsageRecord) entity.DateRange {
	var minT, maxT time.Time
	var hasMin, hasMax bool

	for _, row := range rows {
		if row.RawAmount == 0 {
			continue
		}
		if t, ok := ParseTimestamp(row.StartTime); ok && (!hasMin || t.Before(minT)) {
			minT, hasMin = t, true
		}
		if t, ok := ParseTimestamp(row.EndTime); ok && (!hasMax || t.After(maxT)) {
			maxT, hasMax = t, true
		}
	}

	r := entity.DateRange{Min: entity.Placeholder, Max: entity.Placeholder}
	if hasMin {
		r.Min = minT.Format(entity.DisplayLayout)
	}
	if hasMax {
		r.Max = maxT.Format(entity.DisplayLayout)
	}
	return r
}
