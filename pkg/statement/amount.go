package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Missing is the absent amount: a NullDecimal that holds no value. Cells
// that fail to parse and formulas that fail to evaluate all collapse to it.
var Missing = decimal.NullDecimal{}

// ParseAmount converts a raw statement cell into an exact decimal amount.
// Anything that does not parse (empty cell, prose, stray symbols) comes
// back as Missing; a bad cell is data here, never an error.
func ParseAmount(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Missing
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func amountFrom(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
