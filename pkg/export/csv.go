package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVRenderer writes tables as RFC 4180 CSV with a header line.
type CSVRenderer struct{}

// NewCSVRenderer builds a CSV renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (r *CSVRenderer) Extension() string { return FormatCSV }

// Render produces CSV encoded bytes for the table. The title is not part of CSV output.
func (r *CSVRenderer) Render(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
