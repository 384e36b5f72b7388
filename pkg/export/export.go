package export

import (
	"fmt"
	"strings"
)

// Supported output formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// Table is the tabular content handed to a renderer. Every row must have one cell per header.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer turns a Table into a downloadable document.
type Renderer interface {
	Render(table Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer registered for the given format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return NewCSVRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func (t Table) validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("table requires at least one header")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Headers))
		}
	}
	return nil
}
