package core

import (
	"github.com/shopspring/decimal"

	"github.com/niko1327/vento/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals derives the display totals from the current draft:
// vat = base * rate / 100, total = base + vat, each fixed to two decimals.
// Pure and recomputed on every read; nothing here may be cached across an
// edit.
func ComputeTotals(draft *models.InvoiceDraft) models.Totals {
	if draft == nil {
		return models.Totals{Base: "0.00", VAT: "0.00", Total: "0.00"}
	}

	base := decimal.NewFromFloat(draft.Price)
	rate := decimal.NewFromFloat(floatPrefix(draft.VATRate))

	vat := base.Mul(rate).Div(hundred)
	total := base.Add(vat)

	return models.Totals{
		Base:  base.StringFixed(2),
		VAT:   vat.StringFixed(2),
		Total: total.StringFixed(2),
	}
}
