package export

import (
	"fmt"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

// Table is the flat, human-labeled shape handed to the spreadsheet sink. The
// core's job ends at producing correct rows; the sink only encodes them.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

// Document is the shape handed to the PDF sink.
type Document struct {
	Title    string
	DateLine string
	Entries  []DocumentEntry
	Totals   []string
}

// DocumentEntry is one bulleted order line with an optional note below it.
type DocumentEntry struct {
	Text string
	Note string
}

const (
	documentTitle = "Talleres Esperanza - Pedidos de Almuerzo"

	summaryPrefix = "pedidos"
	historyPrefix = "historial_pedidos"
)

// Filename names an artifact by the current local calendar date.
func Filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, model.Today(), ext)
}

// SummaryFilename names the batch summary artifact.
func SummaryFilename(ext string) string { return Filename(summaryPrefix, ext) }

// HistoryFilename names the history artifact.
func HistoryFilename(ext string) string { return Filename(historyPrefix, ext) }

func labelOrEmpty[T interface{ Label() string }](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).Label()
}

// SummaryTable builds the batch export rows: one row per draft plus the
// trailing RESUMEN row with the aggregate counts.
func SummaryTable(drafts []model.OrderDraft, summary usecase.Summary) Table {
	rows := make([][]string, 0, len(drafts)+1)
	for _, d := range drafts {
		date := d.OrderDate
		if date == "" {
			date = model.Today()
		}
		rows = append(rows, []string{
			d.PersonName,
			labelOrEmpty(d.Starter),
			labelOrEmpty(d.Drink),
			labelOrEmpty(d.MainDish),
			d.Note,
			d.PaymentMethod.Label(),
			date,
		})
	}
	rows = append(rows, []string{
		"--- RESUMEN ---",
		"",
		"",
		"",
		fmt.Sprintf("Total almuerzos: %d", summary.Total),
		fmt.Sprintf("Efectivo: %d, Vouchers: %d", summary.CashCount, summary.VoucherCount),
		"",
	})

	return Table{
		Sheet:  "Pedidos",
		Header: []string{"Nombre", "Entrada", "Bebida", "Plato Principal", "Observaciones", "Forma de Pago", "Fecha"},
		Rows:   rows,
	}
}

// HistoryTable builds the history export rows. Callers pass records already
// filtered to qualifying lunches.
func HistoryTable(records []model.OrderRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.OrderDate,
			r.PersonName,
			usecase.DescribeRecord(r),
			r.Note,
			r.PaymentMethod.Label(),
		})
	}

	return Table{
		Sheet:  "Historial",
		Header: []string{"Fecha", "Nombre", "Menú", "Observaciones", "Forma de Pago"},
		Rows:   rows,
	}
}

// SummaryDocument builds the printable batch report.
func SummaryDocument(drafts []model.OrderDraft, summary usecase.Summary) Document {
	entries := make([]DocumentEntry, 0, len(drafts))
	for _, d := range drafts {
		entry := DocumentEntry{
			Text: fmt.Sprintf("%s: %s (%s)", d.PersonName, usecase.DescribeDraft(d), d.PaymentMethod.Label()),
		}
		if d.Note != "" {
			entry.Note = fmt.Sprintf("Obs: %s", d.Note)
		}
		entries = append(entries, entry)
	}

	return Document{
		Title:    documentTitle,
		DateLine: fmt.Sprintf("Fecha: %s", model.Today()),
		Entries:  entries,
		Totals: []string{
			fmt.Sprintf("Total de almuerzos: %d", summary.Total),
			fmt.Sprintf("Pagos en efectivo: %d", summary.CashCount),
			fmt.Sprintf("Pagos con voucher: %d", summary.VoucherCount),
		},
	}
}
