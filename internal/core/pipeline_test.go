package core

import (
	"testing"

	"github.com/niko1327/vento/internal/domain/models"
)

// End-to-end over the whole derivation: raw sheet row -> trip -> draft ->
// totals, with no stored client matching the label.
func TestRowToDraftPipeline(t *testing.T) {
	rows := [][]string{
		row("KRUG", "CB6034CX/KH0I", "26/3", "CZ", "Rakovnik", "31/3", "GR", "Aspropyrgos", "€3", ""),
	}

	trips := NormalizeRows(rows)
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(trips))
	}

	d := testAssembler().Assemble(trips[0], nil, models.CompanySettings{Name: `"VENTO TRANSPORT" OOD`})

	if d.Trip.RouteTitle != "Rakovnik, CZ - Aspropyrgos, GR" {
		t.Fatalf("routeTitle = %q", d.Trip.RouteTitle)
	}
	if d.Price != 3 {
		t.Fatalf("price = %v", d.Price)
	}
	if d.Client.Name != "KRUG" {
		t.Fatalf("unmatched client should fall back to the label, got %q", d.Client.Name)
	}

	totals := ComputeTotals(&d)
	if totals.Base != "3.00" || totals.VAT != "0.00" || totals.Total != "3.00" {
		t.Fatalf("totals = %+v", totals)
	}
}
