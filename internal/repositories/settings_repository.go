package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/niko1327/vento/internal/config"
	intdb "github.com/niko1327/vento/internal/db"
	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/domain/models"
)

// settingsRowID pins the singleton row.
const settingsRowID = 1

// defaultSettings is the sender profile used until the operator saves their
// own. Matches the company the tool was written for.
func defaultSettings() models.CompanySettings {
	return models.CompanySettings{
		Name:    `"VENTO TRANSPORT" OOD`,
		Address: `"Otec Paisii n. 51 2850 Petrich, Bulgaria`,
		VAT:     "BG207324277",
		Bank:    "Unicredit Bulbank",
		IBAN:    "BG23UNCR70001526680716",
		SWIFT:   "UNCRBGSF",
	}
}

// SettingsRepository reads and writes the singleton CompanySettings row.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Get returns the stored sender profile, falling back to the built-in
// defaults when nothing has been saved yet.
func (r SettingsRepository) Get() (models.CompanySettings, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "company_settings") {
		return defaultSettings(), nil
	}

	var s models.CompanySettings
	err := db.QueryRow(`
		SELECT name, address, vat, bank, iban, swift
		FROM company_settings
		WHERE id = ?
	`, settingsRowID).Scan(&s.Name, &s.Address, &s.VAT, &s.Bank, &s.IBAN, &s.SWIFT)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultSettings(), nil
	}
	if err != nil {
		return models.CompanySettings{}, domain.UnavailableError{Resource: "company settings", Err: err}
	}
	return s, nil
}

// Update replaces the singleton row.
func (r SettingsRepository) Update(s models.CompanySettings) error {
	db := r.db()
	if db == nil {
		return domain.UnavailableError{Resource: "company settings"}
	}

	_, err := db.Exec(`
		INSERT INTO company_settings (id, name, address, vat, bank, iban, swift)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), address=VALUES(address), vat=VALUES(vat),
			bank=VALUES(bank), iban=VALUES(iban), swift=VALUES(swift)
	`, settingsRowID, s.Name, s.Address, s.VAT, s.Bank, s.IBAN, s.SWIFT)
	if err != nil {
		return domain.UnavailableError{Resource: "company settings", Err: err}
	}
	return nil
}
