package repositories

import "database/sql"

// EnsureSchema creates the two tables this tool owns. Safe to run on every
// startup.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			client_name VARCHAR(255) NOT NULL,
			short_name VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT '',
			vat_number VARCHAR(64) NOT NULL DEFAULT '',
			bank_name VARCHAR(255) NOT NULL DEFAULT '',
			iban VARCHAR(64) NOT NULL DEFAULT '',
			swift VARCHAR(32) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS company_settings (
			id BIGINT PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT '',
			vat VARCHAR(64) NOT NULL DEFAULT '',
			bank VARCHAR(255) NOT NULL DEFAULT '',
			iban VARCHAR(64) NOT NULL DEFAULT '',
			swift VARCHAR(32) NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
