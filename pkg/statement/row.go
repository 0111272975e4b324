package statement

import "github.com/shopspring/decimal"

// Row is one line item of the statement: the two reported period values and
// the figures derived from them. Difference and Ratio are computed once at
// construction and never touched afterwards.
type Row struct {
	Name        string
	CurrentYear decimal.NullDecimal
	LastYear    decimal.NullDecimal
	Difference  decimal.NullDecimal
	Ratio       decimal.NullDecimal
}

// NewRow parses both period cells and derives difference and change ratio.
func NewRow(name, currentRaw, lastRaw string) Row {
	return newRowFromAmounts(name, ParseAmount(currentRaw), ParseAmount(lastRaw))
}

// newRowFromAmounts derives a row from already-parsed period values. The
// ratio stays undefined when the prior period is zero and when the value
// crossed sign between the periods, where a percentage of the prior period
// would mislead the reader.
func newRowFromAmounts(name string, current, last decimal.NullDecimal) Row {
	row := Row{Name: name, CurrentYear: current, LastYear: last}
	if !current.Valid || !last.Valid {
		return row
	}
	row.Difference = amountFrom(current.Decimal.Sub(last.Decimal))
	if last.Decimal.IsZero() || current.Decimal.Mul(last.Decimal).Sign() < 0 {
		return row
	}
	row.Ratio = amountFrom(row.Difference.Decimal.Div(last.Decimal))
	return row
}
