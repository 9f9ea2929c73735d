package core

import "github.com/niko1327/vento/internal/domain/models"

// columnMap pins the column positions of the external spreadsheet schema.
// The feed is column-positional and sparse; if the sheet layout ever drifts,
// this struct is the only place to touch.
type columnMap struct {
	Client        int
	Plates        int
	LoadDate      int
	LoadCountry   int
	LoadCity      int
	UnloadDate    int
	UnloadCountry int
	UnloadCity    int
	Income        int
	OrderNumber   int
}

var sheetColumns = columnMap{
	Client:        2,
	Plates:        4,
	LoadDate:      5,
	LoadCountry:   6,
	LoadCity:      7,
	UnloadDate:    8,
	UnloadCountry: 9,
	UnloadCity:    10,
	Income:        12,
	OrderNumber:   15,
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func projectRow(row []string) models.Trip {
	return models.Trip{
		Client:        cell(row, sheetColumns.Client),
		Plates:        cell(row, sheetColumns.Plates),
		LoadDate:      cell(row, sheetColumns.LoadDate),
		LoadCountry:   cell(row, sheetColumns.LoadCountry),
		LoadCity:      cell(row, sheetColumns.LoadCity),
		UnloadDate:    cell(row, sheetColumns.UnloadDate),
		UnloadCountry: cell(row, sheetColumns.UnloadCountry),
		UnloadCity:    cell(row, sheetColumns.UnloadCity),
		Income:        cell(row, sheetColumns.Income),
		OrderNumber:   cell(row, sheetColumns.OrderNumber),
	}
}

// NormalizeRows turns a whole spreadsheet feed into trips. Rows carrying
// neither a client nor plates are dropped, and the result is reversed so the
// most recent trip comes first (the source is chronological ascending).
func NormalizeRows(rows [][]string) []models.Trip {
	trips := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		t := projectRow(row)
		if t.Blank() {
			continue
		}
		trips = append(trips, t)
	}
	for i, j := 0, len(trips)-1; i < j; i, j = i+1, j-1 {
		trips[i], trips[j] = trips[j], trips[i]
	}
	return trips
}
