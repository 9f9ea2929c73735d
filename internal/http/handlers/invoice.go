package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/services"
)

// InvoiceHandler drives the active invoice draft.
type InvoiceHandler struct {
	Session *services.InvoiceSession
	Docs    services.DocsService
}

type EditDTO struct {
	Section string `json:"section" validate:"required"`
	Field   string `json:"field" validate:"required"`
	Value   string `json:"value"`
}

func invoicePayload(d models.InvoiceDraft, t models.Totals) gin.H {
	return gin.H{"invoice": d, "totals": t}
}

// Select builds a fresh draft from the posted trip. On success the new
// draft replaces the previous one; on failure the previous one stays.
func (h InvoiceHandler) Select(c *gin.Context) {
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid trip payload", err)
		return
	}

	draft, totals, err := h.Session.Select(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoicePayload(draft, totals))
}

func (h InvoiceHandler) Current(c *gin.Context) {
	draft, totals, err := h.Session.Current()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoicePayload(draft, totals))
}

func (h InvoiceHandler) Edit(c *gin.Context) {
	var dto EditDTO
	if !BindAndValidate(c, &dto) {
		return
	}

	draft, totals, err := h.Session.Edit(dto.Section, dto.Field, dto.Value)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoicePayload(draft, totals))
}

func (h InvoiceHandler) PDF(c *gin.Context) {
	draft, totals, err := h.Session.Current()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	content, filename, err := h.Docs.RenderInvoice(draft, totals)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render invoice", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
