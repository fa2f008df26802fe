package export

import "strings"

// Format identifies an export encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Renderer encodes a dataset in one format.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// Registry resolves renderers by format.
type Registry map[Format]Renderer

// NewRegistry wires the default renderers. header is printed on PDFs.
func NewRegistry(header string) Registry {
	return Registry{
		FormatPDF:  NewPDFExporter(header),
		FormatCSV:  NewCSVExporter(),
		FormatXLSX: NewXLSXExporter(),
	}
}

// Lookup returns the renderer for a case-insensitive format name.
func (r Registry) Lookup(format string) (Renderer, bool) {
	renderer, ok := r[Format(strings.ToLower(strings.TrimSpace(format)))]
	return renderer, ok
}
