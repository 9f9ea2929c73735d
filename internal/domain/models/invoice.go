package models

// ClientBlock is the editable counterparty section of a draft. It is derived
// from a matched Client at assembly but lives its own life afterwards.
type ClientBlock struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	VAT     string `json:"vat"`
	Bank    string `json:"bank"`
	IBAN    string `json:"iban"`
	SWIFT   string `json:"swift"`
}

// TripBlock is the editable trip section of a draft.
type TripBlock struct {
	Plate      string `json:"plate"`
	OrderRef   string `json:"orderRef"`
	LoadFull   string `json:"loadFull"`
	UnloadFull string `json:"unloadFull"`
	RouteTitle string `json:"routeTitle"`
}

// InvoiceDraft is the single mutable work object. Exactly one draft is
// active at a time; selecting a new trip replaces it wholesale.
type InvoiceDraft struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          string          `json:"date"`
	Sender        CompanySettings `json:"sender"`
	Client        ClientBlock     `json:"client"`
	Trip          TripBlock       `json:"trip"`
	Price         float64         `json:"price"`
	VATRate       string          `json:"vatRate"`
	Currency      string          `json:"currency"`
}

// Totals are display values derived from the current draft on every read.
type Totals struct {
	Base  string `json:"base"`
	VAT   string `json:"vat"`
	Total string `json:"total"`
}
