package usage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/xuri/excelize/v2"
)

// timestampLayouts are tried in order. Day-first layouts come before
// month-first ones, so 01/02/2024 reads as 1 February.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2/1/2006, 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"1/2/2006, 3:04 PM",
	"1/2/2006, 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02-Jan-06 03.04.05.000000000 PM",
	"02-Jan-06 03.04.05.000000 PM",
	"02-Jan-06 03.04.05 PM",
	"02-Jan-2006 15:04:05",
	"02-Jan-06",
}

// Excel serial day numbers accepted as timestamps (1900-01-01 to 9999-12-31).
const (
	minExcelSerial = 1
	maxExcelSerial = 2958466
)

// ParseTimestamp parses a cell as a generic timestamp. It returns false when
// no layout matches.
func ParseTimestamp(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Células de data lidas sem formatação chegam como número de série.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= minExcelSerial && serial < maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Round(time.Second), true
		}
	}

	return time.Time{}, false
}

// FormatTimestamp renders a time cell as DD/MM/YYYY, HH:MM. Unparseable cells
// pass through unchanged and empty cells become the placeholder.
func FormatTimestamp(cell string) string {
	if strings.TrimSpace(cell) == "" {
		return entity.Placeholder
	}
	if t, ok := ParseTimestamp(cell); ok {
		return t.Format(entity.DisplayLayout)
	}
	return cell
}

// ParseDisplayTime parses a value produced by FormatTimestamp.
func ParseDisplayTime(s string) (time.Time, bool) {
	t, err := time.Parse(entity.DisplayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var filterLayouts = []string{
	entity.DisplayLayout,
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseFilterTime parses a user-entered filter bound (DD/MM/YYYY, HH:MM).
// A date without time is read as the start of the day, or as its last minute
// when endOfDay is set.
func ParseFilterTime(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	for i, layout := range filterLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if i == len(filterLayouts)-1 && endOfDay {
			t = t.Add(24*time.Hour - time.Minute)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not DD/MM/YYYY, HH:MM", types.ErrInvalidFilter, s)
}

// NewDateFilter builds a filter from the user-entered bounds. Both empty
// means no filter. A missing bound leaves that side open.
func NewDateFilter(start, end string) (*entity.DateFilter, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}

	f := &entity.DateFilter{
		Start: time.Time{},
		End:   time.Date(9999, 12, 31, 23, 59, 0, 0, time.UTC),
	}

	if start != "" {
		t, err := ParseFilterTime(start, false)
		if err != nil {
			return nil, err
		}
		f.Start = t
	}
	if end != "" {
		t, err := ParseFilterTime(end, true)
		if err != nil {
			return nil, err
		}
		f.End = t
	}

	if f.End.Before(f.Start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", types.ErrInvalidFilter,
			f.End.Format(entity.DisplayLayout), f.Start.Format(entity.DisplayLayout))
	}
	return f, nil
}
