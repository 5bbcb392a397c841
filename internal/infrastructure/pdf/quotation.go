// Package pdf renders quotation documents with gofpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"klevant/internal/domain/ticket"
	sharedconfig "klevant/internal/shared/config"
)

var quotationTerms = []string{
	"This quotation is valid for 15 days from the date of issue.",
	"Prices are inclusive of standard installation charges unless stated otherwise.",
	"Advance payment of 50% is required to confirm the work order.",
	"Warranty terms apply as per the respective product manufacturer.",
}

type QuotationRenderer struct {
	company sharedconfig.CompanyConfig
}

func NewQuotationRenderer(company sharedconfig.CompanyConfig) *QuotationRenderer {
	return &QuotationRenderer{company: company}
}

// Render produces the quotation PDF for a ticket. The totals printed are
// recomputed from the item rows.
func (r *QuotationRenderer) Render(t *ticket.Ticket, q *ticket.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	r.letterhead(pdf)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "QUOTATION", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	details := [][2]string{
		{"Quotation No.", fmt.Sprintf("Q-%d", q.ID())},
		{"Ticket No.", fmt.Sprintf("%d", t.ID())},
		{"Date", q.CreatedAt().Format("02 Jan 2006")},
		{"Customer", t.CustomerName()},
		{"Mobile", t.CustomerMobile()},
		{"Address", t.Address()},
		{"Service", t.ServiceType().Label()},
	}
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	r.itemsTable(pdf, q)

	if q.Notes() != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, q.Notes(), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Terms & Conditions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for i, term := range quotationTerms {
		pdf.MultiCell(0, 4.5, fmt.Sprintf("%d. %s", i+1, term), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *QuotationRenderer) letterhead(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 9, r.company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 5, r.company.Tagline, "", 1, "C", false, 0, "")

	contact := r.company.Phone
	if r.company.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += r.company.Email
	}
	if contact != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, contact, "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)
}

func (r *QuotationRenderer) itemsTable(pdf *gofpdf.Fpdf, q *ticket.Quotation) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, item := range q.Items() {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 7, item.Description(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, item.Price().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", item.Quantity()), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, item.LineTotal().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, q.TotalAmount().StringFixed(2), "1", 1, "R", false, 0, "")
}
