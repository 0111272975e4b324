package statement

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Table holds the statement rows in arrival order plus a name→position map
// used to resolve line items. The schema may declare positions the input
// never filled, so every lookup is bounds checked against the sequence.
type Table struct {
	rows   []Row
	index  map[string]int
	logger *log.Logger
}

// NewTable creates an empty table whose lookups follow the given schema.
func NewTable(schema map[string]int, logger *log.Logger) *Table {
	index := make(map[string]int, len(schema))
	for name, pos := range schema {
		index[name] = pos
	}
	return &Table{index: index, logger: logger}
}

// AddRow appends a row; its position in the sequence is the input order.
func (t *Table) AddRow(row Row) {
	t.rows = append(t.rows, row)
}

// Rows returns all rows in order: base rows first, derived rows after.
func (t *Table) Rows() []Row {
	return t.rows
}

// RowByName resolves a line-item name to its row. Unknown names, and names
// whose mapped position has not been filled yet, come back as not found.
func (t *Table) RowByName(name string) (Row, bool) {
	i, ok := t.index[name]
	if !ok || i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

// GenerateDerivedRows evaluates the formulas in order, appending one row
// per formula. A formula that cannot be evaluated still appends its row
// with every value missing; the remaining formulas are unaffected. Each
// appended row is registered under its normalized name and, when the
// formula declares one, its canonical schema key.
func (t *Table) GenerateDerivedRows(formulas []Formula) {
	for _, f := range formulas {
		current, last, err := f.evaluate(t)
		if err != nil {
			t.logger.Debug("derived row degraded", "row", f.Name, "error", err)
		}
		t.rows = append(t.rows, newRowFromAmounts(f.Name, current, last))

		i := len(t.rows) - 1
		t.index[normalizeName(f.Name)] = i
		if f.Key != "" {
			t.index[f.Key] = i
		}
	}
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
