package services

import (
	"context"
	"fmt"

	"github.com/niko1327/vento/internal/core"
	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/sheets"
	"github.com/niko1327/vento/internal/utils"
)

// TripService materializes the whole trip feed per call. No pagination, no
// partial results: a source failure yields nothing and the caller keeps its
// previous list.
type TripService struct {
	Source    sheets.Source
	RequestID string
}

// LoadRows fetches the raw feed (for the raw sheet endpoint).
func (s TripService) LoadRows(ctx context.Context, sheetID string) ([][]string, error) {
	return s.Source.Fetch(ctx, sheetID)
}

// LoadTrips fetches the default feed and normalizes it, most recent first.
func (s TripService) LoadTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := s.Source.Fetch(ctx, "")
	if err != nil {
		return nil, err
	}
	trips := core.NormalizeRows(rows)
	utils.LogEvent(s.RequestID, "trips", "load", fmt.Sprintf("rows=%d trips=%d", len(rows), len(trips)))
	return trips, nil
}
