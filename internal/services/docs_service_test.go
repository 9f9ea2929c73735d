package services

import (
	"testing"

	"github.com/niko1327/vento/internal/domain/models"
)

func TestDocsServiceRenderInvoice(t *testing.T) {
	draft := models.InvoiceDraft{
		InvoiceNumber: ":1234567890",
		Date:          "28/03/2026",
		Sender: models.CompanySettings{
			Name: `"VENTO TRANSPORT" OOD`, Address: "Petrich, Bulgaria",
			VAT: "BG207324277", Bank: "Unicredit Bulbank",
			IBAN: "BG23UNCR70001526680716", SWIFT: "UNCRBGSF",
		},
		Client: models.ClientBlock{Name: "KRUG AD", Address: "Sofia", VAT: "BG123"},
		Trip: models.TripBlock{
			Plate: "CB6034CX", OrderRef: "42",
			LoadFull: "26.03.2026 CZ Rakovnik", UnloadFull: "31.03.2026 GR Aspropyrgos",
			RouteTitle: "Rakovnik, CZ - Aspropyrgos, GR",
		},
		Price: 3000, VATRate: "0", Currency: "eur",
	}
	totals := models.Totals{Base: "3000.00", VAT: "0.00", Total: "3000.00"}

	pdf, filename, err := DocsService{}.RenderInvoice(draft, totals)
	if err != nil {
		t.Fatalf("RenderInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("RenderInvoice returned empty data")
	}
	if filename != "INVOICE__1234567890.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
