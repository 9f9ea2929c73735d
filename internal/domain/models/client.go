package models

import "time"

// Client is a stored counterparty from the client directory.
type Client struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name"`
	ShortName  string    `json:"short_name"`
	Address    string    `json:"address"`
	VATNumber  string    `json:"vat_number"`
	BankName   string    `json:"bank_name"`
	IBAN       string    `json:"iban"`
	SWIFT      string    `json:"swift"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompanySettings is the singleton sender profile copied into each draft.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	VAT     string `json:"vat"`
	Bank    string `json:"bank"`
	IBAN    string `json:"iban"`
	SWIFT   string `json:"swift"`
}
