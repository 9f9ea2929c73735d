package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "github.com/niko1327/vento/internal/config"
	intdb "github.com/niko1327/vento/internal/db"
	"github.com/niko1327/vento/internal/domain"
	"github.com/niko1327/vento/internal/domain/models"
)

// ClientRepository is the sole source of truth for the client directory.
// Nothing is cached across restarts; the matcher works off a fresh List
// snapshot.
type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the directory snapshot, most-recently-created first. That
// ordering is what the matcher's first-match-wins rule runs against.
func (r ClientRepository) List() ([]models.Client, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "clients") {
		return []models.Client{}, nil
	}

	rows, err := db.Query(`
		SELECT id, client_name, short_name, address, vat_number, bank_name, iban, swift, created_at
		FROM clients
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, domain.UnavailableError{Resource: "client directory", Err: err}
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.ClientName, &c.ShortName, &c.Address,
			&c.VATNumber, &c.BankName, &c.IBAN, &c.SWIFT, &c.CreatedAt); err != nil {
			return nil, domain.UnavailableError{Resource: "client directory", Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UnavailableError{Resource: "client directory", Err: err}
	}
	return out, nil
}

// Upsert inserts a new client (id 0 or unknown) or updates an existing one,
// returning the stored record. The legal name is required and rejected
// before any statement runs.
func (r ClientRepository) Upsert(c models.Client) (models.Client, error) {
	if strings.TrimSpace(c.ClientName) == "" {
		return models.Client{}, domain.ValidationError{Field: "client_name", Msg: "required"}
	}

	db := r.db()
	if db == nil {
		return models.Client{}, domain.UnavailableError{Resource: "client directory"}
	}

	var existingID int64
	if c.ID > 0 {
		err := db.QueryRow(`SELECT id FROM clients WHERE id = ? LIMIT 1`, c.ID).Scan(&existingID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, domain.UnavailableError{Resource: "client directory", Err: err}
		}
	}

	if existingID > 0 {
		_, err := db.Exec(`
			UPDATE clients
			SET client_name=?, short_name=?, address=?, vat_number=?, bank_name=?, iban=?, swift=?
			WHERE id=?
		`, c.ClientName, c.ShortName, c.Address, c.VATNumber, c.BankName, c.IBAN, c.SWIFT, existingID)
		if err != nil {
			return models.Client{}, domain.UnavailableError{Resource: "client directory", Err: err}
		}
		c.ID = existingID
		return c, nil
	}

	now := time.Now()
	res, err := db.Exec(`
		INSERT INTO clients (client_name, short_name, address, vat_number, bank_name, iban, swift, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ClientName, c.ShortName, c.Address, c.VATNumber, c.BankName, c.IBAN, c.SWIFT, now)
	if err != nil {
		return models.Client{}, domain.UnavailableError{Resource: "client directory", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Client{}, domain.UnavailableError{Resource: "client directory", Err: err}
	}
	c.ID = id
	c.CreatedAt = now
	return c, nil
}

// Delete removes a client by id.
func (r ClientRepository) Delete(id int64) error {
	db := r.db()
	if db == nil {
		return domain.UnavailableError{Resource: "client directory"}
	}

	res, err := db.Exec(`DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return domain.UnavailableError{Resource: "client directory", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.UnavailableError{Resource: "client directory", Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "client"}
	}
	return nil
}
