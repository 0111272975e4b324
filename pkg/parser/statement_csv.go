package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

// parseCSV reads a delimited statement: a header line followed by one data
// record per line item, with the current and prior period values in the two
// columns after the name. Short records still produce a row; the absent
// cells simply parse to missing values.
func (p *Parser) parseCSV(data []byte) ([]statement.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = p.delimiter
	r.FieldsPerRecord = -1 // allow ragged records, validated per line below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	rows := make([]statement.Row, 0, len(records)-1)
	for i, rec := range records[1:] { // records[0] is the header
		if len(rec) == 0 {
			continue
		}
		if len(rec) < 3 {
			p.logger.Debug("csv line has less than 3 fields", "line", i+2)
		}
		rows = append(rows, statement.NewRow(field(rec, 0), field(rec, 1), field(rec, 2)))
	}
	return rows, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
