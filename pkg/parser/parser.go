package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/statement"
)

type FileType string

const (
	StatementCSV FileType = "statement_csv"
	StatementXLS FileType = "statement_xls"
)

// Parser reads a two-period statement file into rows. The delimiter only
// applies to delimited text input.
type Parser struct {
	logger    *log.Logger
	delimiter rune
}

func New(logger *log.Logger, delimiter rune) *Parser {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Parser{
		logger:    logger,
		delimiter: delimiter,
	}
}

// ReadFile reads the statement at path and parses it by detected type.
func (p *Parser) ReadFile(path string) ([]statement.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.ProcessBytes(data, filepath.Base(path))
}

// ProcessBytes parses statement file contents into rows, base order kept.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]statement.Row, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case StatementXLS:
		return p.parseXLS(data)
	case StatementCSV:
		return p.parseCSV(data)
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("unknown file type")
	}
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return StatementXLS
	case ".csv", ".txt":
		return StatementCSV
	}
	return ""
}
