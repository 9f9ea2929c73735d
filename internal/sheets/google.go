package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// GoogleSource fetches value ranges through the Sheets API with a read-only
// service account.
type GoogleSource struct {
	DefaultSheetID string
	Range          string

	svc *sheetsapi.Service
}

func NewGoogleSource(ctx context.Context, credsJSON []byte, defaultSheetID, readRange string) (*GoogleSource, error) {
	if len(credsJSON) == 0 {
		return nil, &SourceError{Message: "Google API credentials not configured"}
	}
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, &SourceError{Message: "failed to init Sheets client", Detail: err.Error()}
	}
	return &GoogleSource{
		DefaultSheetID: defaultSheetID,
		Range:          readRange,
		svc:            svc,
	}, nil
}

func (g *GoogleSource) Fetch(ctx context.Context, sheetID string) ([][]string, error) {
	id := sheetID
	if id == "" {
		id = g.DefaultSheetID
	}
	if id == "" {
		return nil, &SourceError{Message: "Sheet ID is required"}
	}

	readRange := g.Range
	if readRange == "" {
		readRange = "External!A2:Z"
	}

	resp, err := g.svc.Spreadsheets.Values.Get(id, readRange).Context(ctx).Do()
	if err != nil {
		return nil, &SourceError{Message: "Failed to fetch sheet data", Detail: err.Error()}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, len(r))
		for i, v := range r {
			if s, ok := v.(string); ok {
				row[i] = s
				continue
			}
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
