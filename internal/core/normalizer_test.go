package core

import "testing"

// row lays out cells at the fixed sheet offsets (client=2, plates=4, then
// loadDate..unloadCity at 5-10, income=12, orderNumber=15).
func row(client, plates, loadDate, loadCountry, loadCity, unloadDate, unloadCountry, unloadCity, income, orderNo string) []string {
	r := make([]string, 16)
	r[2] = client
	r[4] = plates
	r[5] = loadDate
	r[6] = loadCountry
	r[7] = loadCity
	r[8] = unloadDate
	r[9] = unloadCountry
	r[10] = unloadCity
	r[12] = income
	r[15] = orderNo
	return r
}

func TestNormalizeRowsProjectsFixedColumns(t *testing.T) {
	rows := [][]string{
		row("KRUG", "CB6034CX/KH0I", "26/3", "CZ", "Rakovnik", "31/3", "GR", "Aspropyrgos", "€3", ""),
	}

	trips := NormalizeRows(rows)
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(trips))
	}

	tr := trips[0]
	if tr.Client != "KRUG" || tr.Plates != "CB6034CX/KH0I" {
		t.Fatalf("client/plates projected wrong: %q %q", tr.Client, tr.Plates)
	}
	if tr.LoadDate != "26/3" || tr.LoadCountry != "CZ" || tr.LoadCity != "Rakovnik" {
		t.Fatalf("load leg projected wrong: %q %q %q", tr.LoadDate, tr.LoadCountry, tr.LoadCity)
	}
	if tr.UnloadDate != "31/3" || tr.UnloadCountry != "GR" || tr.UnloadCity != "Aspropyrgos" {
		t.Fatalf("unload leg projected wrong: %q %q %q", tr.UnloadDate, tr.UnloadCountry, tr.UnloadCity)
	}
	if tr.Income != "€3" || tr.OrderNumber != "" {
		t.Fatalf("income/order projected wrong: %q %q", tr.Income, tr.OrderNumber)
	}
}

func TestNormalizeRowsDropsBlankAndReverses(t *testing.T) {
	rows := [][]string{
		row("Alpha", "", "", "", "", "", "", "", "", ""),
		row("  ", "  ", "", "", "", "", "", "", "", ""), // neither client nor plates
		row("", "CB1234", "", "", "", "", "", "", "", ""),
		row("Beta", "CB9999", "", "", "", "", "", "", "", ""),
	}

	trips := NormalizeRows(rows)
	if len(trips) != 3 {
		t.Fatalf("expected 3 trips after filtering, got %d", len(trips))
	}
	// Most recent (last source row) must come first.
	if trips[0].Client != "Beta" {
		t.Fatalf("expected Beta first, got %q", trips[0].Client)
	}
	if trips[1].Plates != "CB1234" {
		t.Fatalf("expected plates-only trip second, got %+v", trips[1])
	}
	if trips[2].Client != "Alpha" {
		t.Fatalf("expected Alpha last, got %q", trips[2].Client)
	}
}

func TestNormalizeRowsToleratesShortRows(t *testing.T) {
	// Sparse feed: rows may end before the order number column.
	short := []string{"", "", "KRUG", "", "CB6034CX"}
	trips := NormalizeRows([][]string{short})
	if len(trips) != 1 {
		t.Fatalf("expected short row kept, got %d trips", len(trips))
	}
	if trips[0].OrderNumber != "" || trips[0].Income != "" {
		t.Fatalf("missing cells should default to empty, got %+v", trips[0])
	}
}

func TestNormalizeRowsEmptyInput(t *testing.T) {
	if got := NormalizeRows(nil); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %d", len(got))
	}
}
