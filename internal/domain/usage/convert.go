package usage

import (
	"fmt"
	"math"
	"strconv"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

const (
	kib = 1024.0
	mib = kib * 1024
	gib = mib * 1024
)

// Convert turns a raw amount into its display value for the given category.
// Data volume is read as bytes and scaled by powers of 1024, voice is read as
// seconds, SMS as a message count. It never fails.
func Convert(raw float64, category entity.Category) entity.Converted {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = 0
	}

	switch category {
	case entity.CategoryDataVolume:
		return convertBytes(raw)
	case entity.CategoryVoice:
		return entity.Converted{Value: raw, Display: formatDuration(raw)}
	case entity.CategorySMS:
		return entity.Converted{Value: raw, Display: strconv.FormatFloat(raw, 'f', -1, 64) + " SMS"}
	case entity.CategoryUnknown:
		return entity.Converted{Value: raw, Display: fmt.Sprintf("%.2f", raw)}
	}
	return entity.Converted{Value: raw, Display: fmt.Sprintf("%.2f", raw)}
}

// ConvertLabel classifies label and converts raw accordingly.
func ConvertLabel(raw float64, label string) entity.Converted {
	return Convert(raw, Classify(label))
}

func convertBytes(b float64) entity.Converted {
	var value float64
	var unit string

	switch {
	case b < kib:
		value, unit = b, "B"
	case b < mib:
		value, unit = b/kib, "KB"
	case b < gib:
		value, unit = b/mib, "MB"
	default:
		value, unit = b/gib, "GB"
	}

	return entity.Converted{Value: value, Display: fmt.Sprintf("%.2f %s", value, unit)}
}

// formatDuration renders seconds as zero-padded HH:MM:SS.
func formatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := math.Floor(seconds / 3600)
	minutes := math.Floor(math.Mod(seconds, 3600) / 60)
	secs := math.Floor(math.Mod(seconds, 60))
	return fmt.Sprintf("%02d:%02d:%02d", int64(hours), int64(minutes), int64(secs))
}
