package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/niko1327/vento/internal/http/middleware"
)

var validate = validator.New()

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindAndValidate parses the request body into dst and validates it.
// Responds itself on failure and reports whether the handler may continue.
func BindAndValidate[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"message":    "validation failed",
				"errors":     out,
				"request_id": middleware.GetRequestID(c),
			})
			return false
		}
		RespondError(c, http.StatusBadRequest, "validation failed", err)
		return false
	}
	return true
}
