// Package importer reads tabular uploads.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook is returned when the first sheet carries no header row.
var ErrEmptyWorkbook = errors.New("workbook has no rows")

// Row is one data line keyed by normalised header name.
type Row struct {
	Number int
	Values map[string]string
}

// Get returns the trimmed value under header, or "".
func (r Row) Get(header string) string {
	return r.Values[NormalizeHeader(header)]
}

// ReadRows parses the first worksheet of an XLSX workbook. The first row is
// treated as headers. Fully blank lines are skipped; Number keeps the sheet
// line number.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}
	lines, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(lines[0]))
	for i, h := range lines[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if blank(line) {
			continue
		}
		values := make(map[string]string, len(headers))
		for col, h := range headers {
			if h == "" {
				continue
			}
			if col < len(line) {
				values[h] = strings.TrimSpace(line[col])
			} else {
				values[h] = ""
			}
		}
		rows = append(rows, Row{Number: i + 2, Values: values})
	}
	return rows, nil
}

// NormalizeHeader lowercases a header and joins its words with underscores.
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

func blank(line []string) bool {
	for _, c := range line {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
