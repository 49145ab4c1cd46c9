// Package report renders the per-property financial report as a PDF.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"imovel/internal/domain/transaction"
	"imovel/internal/shared/format"
)

// table layout (mm, A4 portrait)
var columnWidths = [6]float64{22, 62, 28, 26, 22, 28}

var columnTitles = [6]string{"Data", "Descrição", "Categoria", "Pagador", "Status", "Valor"}

// Service builds PDF reports.
type Service struct{}

// NewService creates a report service.
func NewService() *Service {
	return &Service{}
}

// Generate renders the report for one property: a title, the generation date
// and one table row per transaction (all of them, not just paid ones).
// Installment members carry a " (i/N)" suffix on the description and expense
// amounts are rendered negative.
func (s *Service) Generate(propertyName string, ts []*transaction.Transaction, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Relatório Financeiro - "+propertyName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Gerado em: "+now.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Header row in the brand green.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(0, 156, 107)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], 7, tr(title), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, t := range ts {
		pdf.SetFillColor(245, 245, 245)

		description := t.Description
		if t.Installment != nil {
			description = fmt.Sprintf("%s (%d/%d)", description, t.Installment.Current, t.Installment.Total)
		}

		amount := format.Currency(t.Amount)
		if t.Type == transaction.TypeExpense {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}

		row := [6]string{
			format.Date(t.Date),
			description,
			t.Category.Label(),
			t.Payer,
			t.Status.Label(),
			amount,
		}
		for i, cell := range row {
			align := "L"
			if i == 5 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 6, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
