package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/repositories"
)

// SettingsHandler exposes the single company settings record.
type SettingsHandler struct {
	Repo repositories.SettingsRepository
}

type SettingsDTO struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	VAT     string `json:"vat"`
	Bank    string `json:"bank"`
	IBAN    string `json:"iban"`
	SWIFT   string `json:"swift"`
}

func (h SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Repo.Get()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h SettingsHandler) Update(c *gin.Context) {
	var dto SettingsDTO
	if !BindAndValidate(c, &dto) {
		return
	}

	settings := models.CompanySettings{
		Name:    dto.Name,
		Address: dto.Address,
		VAT:     dto.VAT,
		Bank:    dto.Bank,
		IBAN:    dto.IBAN,
		SWIFT:   dto.SWIFT,
	}
	if err := h.Repo.Update(settings); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
