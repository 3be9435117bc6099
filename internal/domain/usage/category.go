// Package usage normalizes telecom usage exports: it resolves the semantic
// columns of a sheet, converts raw amounts into display units, filters,
// deduplicates, sorts and aggregates the rows, and computes the period shown
// on the statement.
package usage

import (
	"strings"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"golang.org/x/text/unicode/norm"
)

// Labels of the known usage categories, as printed on the statement.
const (
	LabelDataVolume = "Serviço de Dados e internet"
	LabelVoice      = "Serviço de Voz"
	LabelSMS        = "Serviço de SMS"
	LabelPlanFee    = "Ativação de plano"
)

// eventLabels maps billing event paths found in raw exports to labels.
var eventLabels = map[string]string{
	"/event/billing/product/fee/purchase":  LabelPlanFee,
	"/event/delayed/session/telco/gprs":    LabelDataVolume,
	"/event/delayed/session/telco/gsm":     LabelVoice,
	"/event/delayed/session/telco/gsm/sms": LabelSMS,
}

var knownCategories = map[string]entity.Category{
	norm.NFC.String(LabelDataVolume): entity.CategoryDataVolume,
	norm.NFC.String(LabelVoice):      entity.CategoryVoice,
	norm.NFC.String(LabelSMS):        entity.CategorySMS,
}

// NormalizeLabel trims a category cell and brings it to NFC so that labels
// exported with decomposed accents still match.
func NormalizeLabel(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}

// MapEventPath replaces a billing event path with its label. Other values are
// returned normalized but otherwise unchanged.
func MapEventPath(value string) string {
	v := NormalizeLabel(value)
	if label, ok := eventLabels[v]; ok {
		return label
	}
	return v
}

// Classify maps a category label to its closed category. Matching is exact
// after normalization.
func Classify(label string) entity.Category {
	if c, ok := knownCategories[NormalizeLabel(label)]; ok {
		return c
	}
	return entity.CategoryUnknown
}
