package usage

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the leading number of a cell, the way a lenient
// float parser would read "125", "12.5 KB" or "1.5E+3".
var numericPrefix = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmountDecimal reads the leading number of a cell. Anything that does
// not start with a number is zero.
func ParseAmountDecimal(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "+")

	m := numericPrefix.FindString(s)
	m = strings.TrimSuffix(m, ".")
	if m == "" || m == "-" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmount is ParseAmountDecimal as a float.
func ParseAmount(cell string) float64 {
	return ParseAmountDecimal(cell).InexactFloat64()
}
