package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string, err error) {
	payload := gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil && err.Error() != message {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Transient
// upstream failures (sheet, directory) come back as 502 so the UI can offer
// a plain retry.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), err)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), err)
	case domain.IsUnavailable(err):
		respondError(c, http.StatusBadGateway, "source_unavailable", err.Error(), err)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}
