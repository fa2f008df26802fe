package export

import "fmt"

// Field is a labelled value printed outside the main table.
type Field struct {
	Label string
	Value string
}

// Dataset defines tabular export content. Meta lines precede the table and
// Summary lines follow it.
type Dataset struct {
	Title   string
	Meta    []Field
	Headers []string
	Rows    [][]string
	Summary []Field
}

// Validate checks that every row lines up with the headers.
func (d Dataset) Validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("dataset requires at least one header")
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(d.Headers))
		}
	}
	return nil
}
