package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/niko1327/vento/internal/domain/models"
)

func TestSettingsGetStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("company_settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("company_settings"))
	mock.ExpectQuery("SELECT name, address, vat, bank, iban, swift").WithArgs(settingsRowID).
		WillReturnRows(sqlmock.NewRows([]string{"name", "address", "vat", "bank", "iban", "swift"}).
			AddRow("My Co", "Addr", "BG1", "Bank", "IBAN1", "SWIFT1"))

	repo := SettingsRepository{DB: db}
	s, err := repo.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if s.Name != "My Co" || s.SWIFT != "SWIFT1" {
		t.Fatalf("stored settings not returned: %+v", s)
	}
}

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("company_settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("company_settings"))
	mock.ExpectQuery("SELECT name, address, vat, bank, iban, swift").WithArgs(settingsRowID).
		WillReturnRows(sqlmock.NewRows([]string{"name", "address", "vat", "bank", "iban", "swift"}))

	repo := SettingsRepository{DB: db}
	s, err := repo.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if s != defaultSettings() {
		t.Fatalf("expected defaults when no row stored, got %+v", s)
	}
}

func TestSettingsUpdateUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO company_settings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := SettingsRepository{DB: db}
	if err := repo.Update(models.CompanySettings{Name: "My Co"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
