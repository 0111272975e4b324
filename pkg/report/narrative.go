package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/format"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

// narrativeRows is the fixed subset the text report covers, in order.
var narrativeRows = []string{
	"revenue",
	"profit",
	"assets",
	"liabilities",
	"equity",
	"current_ratio",
	"dte_ratio",
	"dsc_ratio",
}

var paragraphTmpl = template.Must(template.New("paragraph").Parse(
	"{{.Company}} has seen {{.Change}} in {{.Item}} in {{.Year}} of " +
		"{{.Currency}}{{.Difference}}{{.Unit}} ({{.Ratio}}) from " +
		"{{.Currency}}{{.LastYear}}{{.Unit}} to {{.Currency}}{{.CurrentYear}}{{.Unit}}.\n\n"))

const reviewFlag = "!!! Ratio > 1.0 – may require further explanation\n\n"

var one = decimal.NewFromInt(1)

// Narrative carries the wording substituted verbatim into the text report.
// Year is the prior-period label the change is reported against.
type Narrative struct {
	Company  string
	Currency string
	Unit     string
	Year     string
}

type paragraph struct {
	Company     string
	Change      string
	Item        string
	Year        string
	Currency    string
	Unit        string
	Difference  string
	Ratio       string
	LastYear    string
	CurrentYear string
}

// WriteText emits the narrative sink: one paragraph per present row of the
// fixed subset, with a review flag under any row whose change ratio exceeds
// 1 in either direction. Rows that are absent, or carry no derived
// difference, are skipped.
func (n Narrative) WriteText(w io.Writer, table *statement.Table) error {
	for _, name := range narrativeRows {
		row, ok := table.RowByName(name)
		if !ok || !row.Difference.Valid {
			continue
		}

		change := "an increase"
		if row.Difference.Decimal.Sign() < 0 {
			change = "a decrease"
		}

		p := paragraph{
			Company:     n.Company,
			Change:      change,
			Item:        strings.ReplaceAll(name, "_", " "),
			Year:        n.Year,
			Currency:    n.Currency,
			Unit:        n.Unit,
			Difference:  format.Decimal(row.Difference, true),
			Ratio:       format.Percent(row.Ratio),
			LastYear:    format.Decimal(row.LastYear, true),
			CurrentYear: format.Decimal(row.CurrentYear, true),
		}
		if err := paragraphTmpl.Execute(w, p); err != nil {
			return fmt.Errorf("failed to render paragraph: %w", err)
		}

		if row.Ratio.Valid && row.Ratio.Decimal.Abs().GreaterThan(one) {
			if _, err := io.WriteString(w, reviewFlag); err != nil {
				return fmt.Errorf("failed to write review flag: %w", err)
			}
		}
	}
	return nil
}
