package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

// parseXLS reads a legacy Excel statement laid out like the CSV form: a
// header row, then one line item per row with the two period values next to
// the name.
func (p *Parser) parseXLS(data []byte) ([]statement.Row, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	cells := workbook.ReadAllCells(1000)
	if len(cells) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	rows := make([]statement.Row, 0, len(cells)-1)
	for _, rec := range cells[1:] {
		if len(rec) == 0 {
			continue
		}
		rows = append(rows, statement.NewRow(field(rec, 0), field(rec, 1), field(rec, 2)))
	}
	return rows, nil
}
