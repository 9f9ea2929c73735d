package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/niko1327/vento/internal/domain/models"
)

// DefaultCurrency is fixed at assembly; the operator invoices in euro only.
const DefaultCurrency = "eur"

// Assembler composes a fresh InvoiceDraft from a selected trip, the client
// snapshot and the sender profile. Pure apart from the clock, which is a
// field so tests can pin it.
type Assembler struct {
	Now func() time.Time
}

func (a Assembler) clock() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// InvoiceNumber derives a draft invoice number from t: a colon followed by
// the last 10 digits of the millisecond timestamp. Millisecond resolution
// truncated this way is not collision-free, but invoices are created at
// human rate and the number stays editable.
func InvoiceNumber(t time.Time) string {
	ms := fmt.Sprintf("%d", t.UnixMilli())
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}
	return ":" + ms
}

// Assemble builds the draft. Load/unload descriptions get the day/month
// dates expanded with the current year; the route title falls back to "?"
// for missing legs so the line is always printable.
func (a Assembler) Assemble(trip models.Trip, snapshot []models.Client, sender models.CompanySettings) models.InvoiceDraft {
	now := a.clock()
	year := now.Year()

	loadFull := strings.TrimSpace(fmt.Sprintf("%s %s %s",
		ExpandDayMonth(trip.LoadDate, year), trip.LoadCountry, trip.LoadCity))
	unloadFull := strings.TrimSpace(fmt.Sprintf("%s %s %s",
		ExpandDayMonth(trip.UnloadDate, year), trip.UnloadCountry, trip.UnloadCity))

	routeTitle := fmt.Sprintf("%s, %s - %s, %s",
		orMark(trip.LoadCity), orMark(trip.LoadCountry),
		orMark(trip.UnloadCity), orMark(trip.UnloadCountry))

	return models.InvoiceDraft{
		InvoiceNumber: InvoiceNumber(now),
		Date:          FormatToday(now),
		Sender:        sender,
		Client:        ClientBlockFor(trip.Client, snapshot),
		Trip: models.TripBlock{
			Plate:      trip.Plates,
			OrderRef:   trip.OrderNumber,
			LoadFull:   loadFull,
			UnloadFull: unloadFull,
			RouteTitle: routeTitle,
		},
		Price:    ParseAmount(trip.Income),
		VATRate:  "0",
		Currency: DefaultCurrency,
	}
}

func orMark(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
