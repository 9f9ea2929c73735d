package core

import (
	"strings"

	"github.com/niko1327/vento/internal/domain/models"
)

// MatchClient resolves a trip's free-text client label against the stored
// snapshot (most-recently-created first). It is a single pass; the first
// client satisfying either rule wins:
//
//  1. short_name equals the label (case-insensitive), or
//  2. client_name contains the label as a substring (case-insensitive).
//
// The precedence is asymmetric and first-match-wins can surprise when several
// legal names share a substring; that is the operator's known trade-off and
// is preserved exactly.
func MatchClient(label string, snapshot []models.Client) (models.Client, bool) {
	needle := strings.ToLower(label)
	for _, c := range snapshot {
		if strings.ToLower(c.ShortName) == needle {
			return c, true
		}
		if strings.Contains(strings.ToLower(c.ClientName), needle) {
			return c, true
		}
	}
	return models.Client{}, false
}

// ClientBlockFor builds the draft's client section from the match, or
// synthesizes a fallback block from the raw label so an invoice is always
// producible even for unknown counterparties.
func ClientBlockFor(label string, snapshot []models.Client) models.ClientBlock {
	if c, ok := MatchClient(label, snapshot); ok {
		name := c.ClientName
		if name == "" {
			name = fallbackName(label)
		}
		return models.ClientBlock{
			Name:    name,
			Address: c.Address,
			VAT:     c.VATNumber,
			Bank:    c.BankName,
			IBAN:    c.IBAN,
			SWIFT:   c.SWIFT,
		}
	}
	return models.ClientBlock{Name: fallbackName(label)}
}

func fallbackName(label string) string {
	if label == "" {
		return "Unknown Client"
	}
	return label
}
