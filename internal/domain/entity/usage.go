package entity

import "time"

// Placeholder substitutes any value that could not be read.
const Placeholder = "N/A"

// DisplayLayout is the fixed DD/MM/YYYY, HH:MM rendering of timestamps.
const DisplayLayout = "02/01/2006, 15:04"

// Category is the closed classification of a usage record.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryDataVolume
	CategoryVoice
	CategorySMS
)

func (c Category) String() string {
	switch c {
	case CategoryDataVolume:
		return "data"
	case CategoryVoice:
		return "voice"
	case CategorySMS:
		return "sms"
	default:
		return "unknown"
	}
}

// Converted is the output of the unit converter.
type Converted struct {
	Value   float64
	Display string
}

// UsageRecord is one normalized, filtered and unit-converted row.
type UsageRecord struct {
	StartTime     string  `json:"start_time" csv:"start_time"`
	EndTime       string  `json:"end_time" csv:"end_time"`
	Category      string  `json:"usage_type" csv:"usage_type"`
	RawAmount     float64 `json:"raw_amount" csv:"raw_amount"`
	DisplayAmount string  `json:"display_amount" csv:"display_amount"`
}

// CategorySummary aggregates all records of one category.
type CategorySummary struct {
	Category     string  `json:"usage_type" csv:"usage_type"`
	Total        float64 `json:"total" csv:"total"`
	DisplayTotal string  `json:"display_total" csv:"display_total"`
}

// DateRange holds the displayed bounds of a statement.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// DateFilter restricts records to an inclusive start-time window.
type DateFilter struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within [Start, End].
func (f DateFilter) Contains(t time.Time) bool {
	return !t.Before(f.Start) && !t.After(f.End)
}

// Extraction is the output of the row extractor, with counters for the rows
// that were dropped along the way.
type Extraction struct {
	Rows      []UsageRecord     `json:"rows"`
	Summaries []CategorySummary `json:"summaries"`

	Scanned       int `json:"-"`
	ZeroAmount    int `json:"-"`
	Duplicates    int `json:"-"`
	Undated       int `json:"-"`
	OutsideFilter int `json:"-"`
}
