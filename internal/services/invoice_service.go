package services

import (
	"fmt"
	"sync"

	"github.com/niko1327/vento/internal/core"
	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/domain/models"
	"github.com/niko1327/vento/internal/utils"
)

// ClientLister supplies the matcher snapshot (newest first).
type ClientLister interface {
	List() ([]models.Client, error)
}

// SettingsGetter supplies the sender profile copied into new drafts.
type SettingsGetter interface {
	Get() (models.CompanySettings, error)
}

// InvoiceSession holds the one active draft. Selecting a trip replaces the
// draft wholesale; edits go through the reducer; totals are derived fresh on
// every read. The mutex only serializes HTTP access; the model is still one
// operator, one draft, last write wins.
type InvoiceSession struct {
	Clients   ClientLister
	Settings  SettingsGetter
	Assembler core.Assembler
	RequestID string

	mu    sync.Mutex
	draft *models.InvoiceDraft
}

// Select assembles a fresh draft from the trip. On a directory or settings
// failure the prior draft stays untouched and the error surfaces to the
// caller.
func (s *InvoiceSession) Select(trip models.Trip) (models.InvoiceDraft, models.Totals, error) {
	snapshot, err := s.Clients.List()
	if err != nil {
		return models.InvoiceDraft{}, models.Totals{}, err
	}
	sender, err := s.Settings.Get()
	if err != nil {
		return models.InvoiceDraft{}, models.Totals{}, err
	}

	d := s.Assembler.Assemble(trip, snapshot, sender)

	s.mu.Lock()
	s.draft = &d
	s.mu.Unlock()

	utils.LogEvent(s.RequestID, "invoice", "select", fmt.Sprintf("client=%s number=%s", d.Client.Name, d.InvoiceNumber))
	return d, core.ComputeTotals(&d), nil
}

// Edit applies one field change. With no active draft it reports not found
// and changes nothing.
func (s *InvoiceSession) Edit(section, field, value string) (models.InvoiceDraft, models.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return models.InvoiceDraft{}, models.Totals{}, domain.NotFoundError{Resource: "invoice draft"}
	}
	s.draft = core.ApplyEdit(s.draft, section, field, value)
	return *s.draft, core.ComputeTotals(s.draft), nil
}

// Current returns the active draft and its totals.
func (s *InvoiceSession) Current() (models.InvoiceDraft, models.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return models.InvoiceDraft{}, models.Totals{}, domain.NotFoundError{Resource: "invoice draft"}
	}
	return *s.draft, core.ComputeTotals(s.draft), nil
}
