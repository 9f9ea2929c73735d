package services

import (
	"testing"
	"time"

	"github.com/niko1327/vento/internal/core"
	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/domain/models"
)

type fakeClients struct {
	clients []models.Client
	err     error
}

func (f fakeClients) List() ([]models.Client, error) { return f.clients, f.err }

type fakeSettings struct {
	settings models.CompanySettings
	err      error
}

func (f fakeSettings) Get() (models.CompanySettings, error) { return f.settings, f.err }

func testSession(clients fakeClients, settings fakeSettings) *InvoiceSession {
	return &InvoiceSession{
		Clients:  clients,
		Settings: settings,
		Assembler: core.Assembler{
			Now: func() time.Time { return time.Date(2026, 3, 28, 10, 0, 0, 0, time.UTC) },
		},
	}
}

func testTrip() models.Trip {
	return models.Trip{
		Client: "KRUG", Plates: "CB6034CX",
		LoadDate: "26/3", LoadCountry: "CZ", LoadCity: "Rakovnik",
		UnloadDate: "31/3", UnloadCountry: "GR", UnloadCity: "Aspropyrgos",
		Income: "€3,000",
	}
}

func TestSessionSelectAssemblesDraft(t *testing.T) {
	s := testSession(
		fakeClients{clients: []models.Client{{ID: 1, ClientName: "KRUG AD", ShortName: "KRUG", Address: "Sofia"}}},
		fakeSettings{settings: models.CompanySettings{Name: "My Co"}},
	)

	d, totals, err := s.Select(testTrip())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if d.Client.Name != "KRUG AD" || d.Client.Address != "Sofia" {
		t.Fatalf("matched client not applied: %+v", d.Client)
	}
	if d.Sender.Name != "My Co" {
		t.Fatalf("sender not copied: %+v", d.Sender)
	}
	if totals.Base != "3000.00" || totals.Total != "3000.00" {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestSessionSelectReplacesPriorDraft(t *testing.T) {
	s := testSession(fakeClients{}, fakeSettings{})

	first, _, err := s.Select(testTrip())
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	if _, _, err := s.Edit("client", "name", "Edited"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	second := testTrip()
	second.Client = "Nutri"
	d, _, err := s.Select(second)
	if err != nil {
		t.Fatalf("second select: %v", err)
	}
	if d.Client.Name != "Nutri" {
		t.Fatalf("new selection should fully replace draft, got %q", d.Client.Name)
	}
	if d.Client.Name == first.Client.Name {
		t.Fatalf("draft not replaced")
	}
}

func TestSessionSelectKeepsDraftOnDirectoryFailure(t *testing.T) {
	s := testSession(fakeClients{}, fakeSettings{})
	if _, _, err := s.Select(testTrip()); err != nil {
		t.Fatalf("seed select: %v", err)
	}

	s.Clients = fakeClients{err: domain.UnavailableError{Resource: "client directory"}}
	if _, _, err := s.Select(testTrip()); !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}

	// Prior draft must still be there, untouched.
	d, _, err := s.Current()
	if err != nil {
		t.Fatalf("prior draft lost after failed select: %v", err)
	}
	if d.Client.Name != "KRUG" {
		t.Fatalf("prior draft changed: %+v", d.Client)
	}
}

func TestSessionEditWithoutDraft(t *testing.T) {
	s := testSession(fakeClients{}, fakeSettings{})
	if _, _, err := s.Edit("client", "name", "X"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := s.Current(); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSessionEditRecomputesTotals(t *testing.T) {
	s := testSession(fakeClients{}, fakeSettings{})
	if _, _, err := s.Select(testTrip()); err != nil {
		t.Fatalf("select: %v", err)
	}

	_, totals, err := s.Edit("root", "vatRate", "20")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if totals.VAT != "600.00" || totals.Total != "3600.00" {
		t.Fatalf("totals not recomputed: %+v", totals)
	}
}
