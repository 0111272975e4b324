package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Formula describes one derived row: the name it is appended under, the
// canonical schema key it is registered as, the rows it reads, and the pure
// function applied to their values once per period.
type Formula struct {
	Name   string
	Key    string
	Inputs []string
	Apply  func(args []decimal.Decimal) decimal.Decimal
}

// DefaultFormulas returns the built-in derived rows in evaluation order.
func DefaultFormulas() []Formula {
	return []Formula{
		{
			Name:   "Current Ratio",
			Key:    "current_ratio",
			Inputs: []string{"current_asset", "current_liability"},
			Apply: func(args []decimal.Decimal) decimal.Decimal {
				return args[0].Div(args[1])
			},
		},
		{
			Name:   "Debt to Equity Ratio",
			Key:    "dte_ratio",
			Inputs: []string{"ncib_debt", "equity"},
			Apply: func(args []decimal.Decimal) decimal.Decimal {
				return args[0].Div(args[1])
			},
		},
		{
			Name:   "Debt Service Coverage Ratio",
			Key:    "dsc_ratio",
			Inputs: []string{"ebit", "interest_costs", "debt_service_of_principal"},
			Apply: func(args []decimal.Decimal) decimal.Decimal {
				return args[0].Div(args[1].Add(args[2]))
			},
		},
	}
}

// evaluate resolves the formula inputs against the table and applies the
// function to the current-period tuple and the last-period tuple. Division
// by zero inside a formula surfaces as a decimal panic; it is recovered
// here so one bad formula degrades to missing values instead of taking the
// whole run down.
func (f Formula) evaluate(t *Table) (current, last decimal.NullDecimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			current, last = Missing, Missing
			err = fmt.Errorf("formula %s: %v", f.Name, r)
		}
	}()

	currentArgs := make([]decimal.Decimal, len(f.Inputs))
	lastArgs := make([]decimal.Decimal, len(f.Inputs))
	for i, name := range f.Inputs {
		row, ok := t.RowByName(name)
		if !ok {
			return Missing, Missing, fmt.Errorf("formula %s: no row named %s", f.Name, name)
		}
		if !row.CurrentYear.Valid || !row.LastYear.Valid {
			return Missing, Missing, fmt.Errorf("formula %s: row %s has no value", f.Name, name)
		}
		currentArgs[i] = row.CurrentYear.Decimal
		lastArgs[i] = row.LastYear.Decimal
	}
	return amountFrom(f.Apply(currentArgs)), amountFrom(f.Apply(lastArgs)), nil
}
