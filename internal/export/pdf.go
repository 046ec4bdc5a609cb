package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDF encodes a document as a paginated A4 report: centered title, date line,
// bulleted entries with optional note lines, then the totals block.
func PDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so accented Spanish labels survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(doc.DateLine), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Pedidos:"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range doc.Entries {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("- %s", entry.Text)), "", 1, "L", false, 0, "")
		if entry.Note != "" {
			pdf.CellFormat(0, 5, tr("  "+entry.Note), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Resumen:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Totals {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
