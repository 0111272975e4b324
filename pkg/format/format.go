// Package format renders statement amounts for the report sinks.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Decimal renders an amount with two fractional digits, comma grouping and
// trailing fractional zeros stripped, so 1200.50 comes out as "1,200.5" and
// 1200.00 as "1,200". Missing renders as the empty string.
func Decimal(v decimal.NullDecimal, withCommas bool) string {
	if !v.Valid {
		return ""
	}
	s := v.Decimal.StringFixed(2)
	if withCommas {
		s = groupThousands(s)
	}
	return stripTailZeros(s)
}

// Percent renders an amount as a percentage with exactly two fractional
// digits. Missing renders as the empty string.
func Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.Mul(hundred).StringFixed(2) + "%"
}

// groupThousands inserts comma separators into the integer part of a fixed
// point string. The sign and the fraction are left untouched.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + frac
	}
	return sign + intPart
}

// stripTailZeros drops trailing zeros from the fractional part, and the
// decimal point itself once nothing remains after it. Digits before the
// point and grouping separators are never touched.
func stripTailZeros(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		return s
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}
