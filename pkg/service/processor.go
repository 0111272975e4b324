package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/config"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/parser"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/report"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/schema"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

// Processor runs one analysis: statement file in, csv and text reports out.
type Processor struct {
	config *config.Config
	schema schema.Positions
	logger *log.Logger
}

// Result carries the computed table and where the two reports were written.
type Result struct {
	Table    *statement.Table
	CSVPath  string
	TextPath string
}

func NewProcessor(cfg *config.Config, positions schema.Positions, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		schema: positions,
		logger: logger,
	}
}

// AnalyseFile reads the statement, derives the ratio rows and writes both
// report sinks. Outputs are date stamped and placed next to the input
// unless an output directory is configured.
func (p *Processor) AnalyseFile(inputPath string) (*Result, error) {
	var delimiter rune
	if p.config.Delimiter != "" {
		delimiter = []rune(p.config.Delimiter)[0]
	}

	rows, err := parser.New(p.logger, delimiter).ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error parsing statement: %w", err)
	}

	table := statement.NewTable(p.schema, p.logger)
	for _, row := range rows {
		table.AddRow(row)
	}
	table.GenerateDerivedRows(statement.DefaultFormulas())

	result := &Result{
		Table:    table,
		CSVPath:  p.outputPath(inputPath, "csv"),
		TextPath: p.outputPath(inputPath, "txt"),
	}

	if err := p.writeCSV(result.CSVPath, table); err != nil {
		return nil, err
	}
	if err := p.writeText(result.TextPath, table); err != nil {
		return nil, err
	}

	p.logger.Info("statement analysed", "input", inputPath, "rows", len(table.Rows()))
	return result, nil
}

func (p *Processor) outputPath(inputPath, ext string) string {
	name := fmt.Sprintf("result_%s.%s", time.Now().Format("01-02-06"), ext)
	if p.config.OutputDir != "" {
		return filepath.Join(p.config.OutputDir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

func (p *Processor) writeCSV(path string, table *statement.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, table); err != nil {
		return fmt.Errorf("error writing csv report: %w", err)
	}
	return nil
}

func (p *Processor) writeText(path string, table *statement.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	narrative := report.Narrative{
		Company:  p.config.Company,
		Currency: p.config.Currency,
		Unit:     p.config.Unit,
		Year:     strconv.Itoa(p.config.LastYear),
	}
	if err := narrative.WriteText(f, table); err != nil {
		return fmt.Errorf("error writing text report: %w", err)
	}
	return nil
}
