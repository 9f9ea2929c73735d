package core

import "github.com/niko1327/vento/internal/domain/models"

// ApplyEdit applies a single field change and returns a new draft; the input
// draft is never mutated. With no active draft the edit is a no-op. Unknown
// section/field names leave the draft unchanged rather than failing: the
// edit surface is driven by the UI and a stale field name must not wedge the
// session.
//
// Root "price" takes the leading numeric prefix of the input ("1,5" reads as
// 1, "€500" as 0). Stricter than the coercion used at assembly, but it is how
// the price field has always behaved once a draft exists.
func ApplyEdit(draft *models.InvoiceDraft, section, field, value string) *models.InvoiceDraft {
	if draft == nil {
		return nil
	}
	next := *draft

	switch section {
	case "sender":
		setSenderField(&next.Sender, field, value)
	case "client":
		setClientField(&next.Client, field, value)
	case "trip":
		setTripField(&next.Trip, field, value)
	case "root":
		setRootField(&next, field, value)
	}
	return &next
}

func setSenderField(s *models.CompanySettings, field, value string) {
	switch field {
	case "name":
		s.Name = value
	case "address":
		s.Address = value
	case "vat":
		s.VAT = value
	case "bank":
		s.Bank = value
	case "iban":
		s.IBAN = value
	case "swift":
		s.SWIFT = value
	}
}

func setClientField(c *models.ClientBlock, field, value string) {
	switch field {
	case "name":
		c.Name = value
	case "address":
		c.Address = value
	case "vat":
		c.VAT = value
	case "bank":
		c.Bank = value
	case "iban":
		c.IBAN = value
	case "swift":
		c.SWIFT = value
	}
}

func setTripField(t *models.TripBlock, field, value string) {
	switch field {
	case "plate":
		t.Plate = value
	case "orderRef":
		t.OrderRef = value
	case "loadFull":
		t.LoadFull = value
	case "unloadFull":
		t.UnloadFull = value
	case "routeTitle":
		t.RouteTitle = value
	}
}

func setRootField(d *models.InvoiceDraft, field, value string) {
	switch field {
	case "invoiceNumber":
		d.InvoiceNumber = value
	case "date":
		d.Date = value
	case "price":
		d.Price = floatPrefix(value)
	case "vatRate":
		d.VATRate = value
	case "currency":
		d.Currency = value
	}
}
