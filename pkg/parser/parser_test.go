package parser

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

func TestProcessBytesCSV(t *testing.T) {
	content := []byte(`name,2023,2022
Revenue,300,100
EBIT,40,30
Notes,n/a,30`)

	parser := New(log.Default(), ',')
	rows, err := parser.ProcessBytes(content, "statement.csv")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	assertRow(t, rows[0], "Revenue", "300", "100")
	assertRow(t, rows[1], "EBIT", "40", "30")

	if rows[2].CurrentYear.Valid {
		t.Error("expected unparseable cell to come back missing")
	}
	if rows[2].Difference.Valid || rows[2].Ratio.Valid {
		t.Error("expected missing cell to leave difference and ratio missing")
	}
}

func TestProcessBytesSemicolonDelimiter(t *testing.T) {
	content := []byte("name;2023;2022\nRevenue;300;100")

	parser := New(log.Default(), ';')
	rows, err := parser.ProcessBytes(content, "statement.csv")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	assertRow(t, rows[0], "Revenue", "300", "100")
}

func TestProcessBytesShortRecord(t *testing.T) {
	content := []byte("name,2023,2022\nRevenue,300")

	parser := New(log.Default(), ',')
	rows, err := parser.ProcessBytes(content, "statement.csv")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].CurrentYear.Valid {
		t.Error("expected present cell to parse")
	}
	if rows[0].LastYear.Valid {
		t.Error("expected absent cell to come back missing")
	}
}

func TestProcessBytesUnknownType(t *testing.T) {
	parser := New(log.Default(), ',')
	if _, err := parser.ProcessBytes([]byte("x"), "statement.pdf"); err == nil {
		t.Error("expected an error for an unknown file type")
	}
}

func assertRow(t *testing.T, row statement.Row, name, current, last string) {
	t.Helper()
	if row.Name != name {
		t.Errorf("expected name %q, got %q", name, row.Name)
	}
	if !row.CurrentYear.Valid || !row.CurrentYear.Decimal.Equal(decimal.RequireFromString(current)) {
		t.Errorf("%s: expected current %s, got %+v", name, current, row.CurrentYear)
	}
	if !row.LastYear.Valid || !row.LastYear.Decimal.Equal(decimal.RequireFromString(last)) {
		t.Errorf("%s: expected last %s, got %+v", name, last, row.LastYear)
	}
}
