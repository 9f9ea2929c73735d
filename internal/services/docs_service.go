package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/utils"
)

// DocsService renders the current draft as a printable A4 invoice. Every
// field comes from the draft exactly as edited; only the totals are derived.
type DocsService struct {
	RequestID string
}

func (s DocsService) RenderInvoice(d models.InvoiceDraft, t models.Totals) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "render_invoice", fmt.Sprintf("number=%s", d.InvoiceNumber))
	return buildInvoicePDF(d, t)
}

func buildInvoicePDF(d models.InvoiceDraft, t models.Totals) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	// Sender header, centered like the print view.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, safe(d.Sender.Name, "-"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, d.Sender.Address, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	// TO block on the left, invoice meta on the right.
	topY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(95, 6, "TO")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{d.Client.Name, d.Client.Address, d.Client.VAT} {
		pdf.Cell(95, 5, line)
		pdf.Ln(5)
	}

	pdf.SetY(topY)
	pdf.SetX(115)
	metaRow(pdf, "INVOICE NO.", d.InvoiceNumber)
	pdf.SetX(115)
	metaRow(pdf, "DATE", d.Date)
	pdf.SetX(115)
	metaRow(pdf, "VAT", d.Sender.VAT)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 22)
	pdf.CellFormat(0, 10, "Invoice", "", 1, "R", false, 0, "")
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)

	// Travel description table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 7, "TRAVEL DESCRIPTION", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "VAT %", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "TOTAL", "B", 1, "R", false, 0, "")

	rowY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(100, 6, d.Trip.RouteTitle)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{
		"Loading date: " + d.Trip.LoadFull,
		"Delivery date: " + d.Trip.UnloadFull,
		"Plates: " + d.Trip.Plate,
		"order: " + d.Trip.OrderRef,
	} {
		pdf.Cell(100, 5, line)
		pdf.Ln(5)
	}
	bottomY := pdf.GetY()

	pdf.SetY(rowY)
	pdf.SetX(110)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(30, 6, t.Base, "", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, d.VATRate, "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, t.Total, "", 1, "R", false, 0, "")
	pdf.SetY(bottomY)
	pdf.Ln(6)

	// Bank details.
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Iban: "+d.Sender.IBAN)
	pdf.Ln(5)
	pdf.Cell(0, 5, "SWIFT: "+d.Sender.SWIFT)
	pdf.Ln(5)
	pdf.Cell(0, 5, d.Sender.Bank)
	pdf.Ln(8)

	pdf.Cell(0, 5, "payment 45 days")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("TOTAL DUE %s %s", t.Total, d.Currency), "", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, fmt.Sprintf("Make all checks payable to %q %s", d.Sender.Name, d.Sender.Address), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.InvoiceNumber))
	return buf.Bytes(), filename, nil
}

func metaRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(35, 6, label)
	pdf.CellFormat(50, 6, value, "", 1, "R", false, 0, "")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
