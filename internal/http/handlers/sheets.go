package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/http/middleware"
	"github.com/niko1327/vento/internal/services"
	"github.com/niko1327/vento/internal/sheets"
)

// SheetHandler proxies the raw tabular feed.
type SheetHandler struct {
	Source sheets.Source
}

// GetSheet returns the untouched cell grid for a sheet. The payload shape
// ({data, success} / {error, details, success:false}) is what the UI has
// always consumed.
func (h SheetHandler) GetSheet(c *gin.Context) {
	svc := services.TripService{Source: h.Source, RequestID: middleware.GetRequestID(c)}

	rows, err := svc.LoadRows(c.Request.Context(), c.Query("sheetId"))
	if err != nil {
		status := http.StatusInternalServerError
		payload := gin.H{"success": false}
		var srcErr *sheets.SourceError
		if errors.As(err, &srcErr) {
			payload["error"] = srcErr.Message
			if srcErr.Detail != "" {
				payload["details"] = srcErr.Detail
			}
			if srcErr.Message == "Sheet ID is required" {
				status = http.StatusBadRequest
			}
		} else {
			payload["error"] = err.Error()
		}
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows, "success": true})
}
