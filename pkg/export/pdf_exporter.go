package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a dataset as a printable card: title, meta block,
// bordered table and summary.
type PDFExporter struct {
	header string
}

// NewPDFExporter constructs a PDF exporter. header is printed above every
// document title, typically the school name.
func NewPDFExporter(header string) *PDFExporter {
	return &PDFExporter{header: header}
}

// ContentType implements Renderer.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Extension implements Renderer.
func (e *PDFExporter) Extension() string { return "pdf" }

// Render creates a letter-sized portrait PDF.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12, 15, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if e.header != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 9, tr(e.header), "", 1, "C", false, 0, "")
	}
	if data.Title != "" {
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, tr(data.Title), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	if len(data.Meta) > 0 {
		pdf.SetFont("Arial", "", 10)
		for _, f := range data.Meta {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(40, 6, tr(f.Label), "", 0, "", false, 0, "")
			pdf.SetFont("Arial", "", 10)
			pdf.CellFormat(0, 6, tr(f.Value), "", 1, "", false, 0, "")
		}
		pdf.Ln(4)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageW - left - right) / float64(len(data.Headers))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 238, 245)
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range data.Rows {
		for i, value := range row {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, 7, tr(value), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(data.Summary) > 0 {
		pdf.Ln(6)
		for _, f := range data.Summary {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(50, 7, tr(f.Label), "", 0, "", false, 0, "")
			pdf.SetFont("Arial", "", 11)
			pdf.CellFormat(0, 7, tr(f.Value), "", 1, "", false, 0, "")
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
