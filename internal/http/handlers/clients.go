package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/repositories"
)

// ClientHandler exposes the client directory.
type ClientHandler struct {
	Repo repositories.ClientRepository
}

// ClientDTO is the request body for upserts. The legal name is the only
// hard requirement; everything else may be filled in later.
type ClientDTO struct {
	ID         int64  `json:"id"`
	ClientName string `json:"client_name" validate:"required"`
	ShortName  string `json:"short_name"`
	Address    string `json:"address"`
	VATNumber  string `json:"vat_number"`
	BankName   string `json:"bank_name"`
	IBAN       string `json:"iban"`
	SWIFT      string `json:"swift"`
}

func (dto ClientDTO) model() models.Client {
	return models.Client{
		ID:         dto.ID,
		ClientName: dto.ClientName,
		ShortName:  dto.ShortName,
		Address:    dto.Address,
		VATNumber:  dto.VATNumber,
		BankName:   dto.BankName,
		IBAN:       dto.IBAN,
		SWIFT:      dto.SWIFT,
	}
}

func (h ClientHandler) List(c *gin.Context) {
	clients, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h ClientHandler) Upsert(c *gin.Context) {
	var dto ClientDTO
	if !BindAndValidate(c, &dto) {
		return
	}

	// PUT /clients/:id takes the id from the path.
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid client id", err)
			return
		}
		dto.ID = id
	}

	stored, err := h.Repo.Upsert(dto.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid client id", err)
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
