package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/http/middleware"
	"github.com/niko1327/vento/internal/services"
	"github.com/niko1327/vento/internal/sheets"
)

// TripHandler serves the normalized trip list.
type TripHandler struct {
	Source sheets.Source
}

// GetTrips fetches and normalizes the whole feed, most recent trip first.
// A source failure yields no partial list; the client keeps whatever it is
// showing and may retry.
func (h TripHandler) GetTrips(c *gin.Context) {
	svc := services.TripService{Source: h.Source, RequestID: middleware.GetRequestID(c)}

	trips, err := svc.LoadTrips(c.Request.Context())
	if err != nil {
		var srcErr *sheets.SourceError
		if errors.As(err, &srcErr) {
			RespondDomainError(c, domain.UnavailableError{Resource: "trip feed", Err: err})
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
