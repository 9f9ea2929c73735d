package models

import "strings"

// Trip is one transport leg projected out of a raw spreadsheet row. Every
// field is the raw cell text; absent cells come through as "".
type Trip struct {
	Client        string `json:"client"`
	Plates        string `json:"plates"`
	LoadDate      string `json:"loadDate"`
	LoadCountry   string `json:"loadCountry"`
	LoadCity      string `json:"loadCity"`
	UnloadDate    string `json:"unloadDate"`
	UnloadCountry string `json:"unloadCountry"`
	UnloadCity    string `json:"unloadCity"`
	Income        string `json:"income"`
	OrderNumber   string `json:"orderNumber"`
}

// Blank reports whether the row carried neither a client nor plates and
// should be dropped by the normalizer.
func (t Trip) Blank() bool {
	return strings.TrimSpace(t.Client) == "" && strings.TrimSpace(t.Plates) == ""
}
