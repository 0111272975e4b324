package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/format"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

// WriteCSV emits the tabular sink: one record per row, base rows in input
// order followed by the derived rows. The ratio column is always rendered
// as a percentage; missing values render as empty cells.
func WriteCSV(w io.Writer, table *statement.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "current_year", "last_year", "difference", "ratio"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range table.Rows() {
		record := []string{
			row.Name,
			format.Decimal(row.CurrentYear, true),
			format.Decimal(row.LastYear, true),
			format.Decimal(row.Difference, true),
			format.Percent(row.Ratio),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
