package directory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/opsdesk/bec-engine/internal/core"
	"go.uber.org/zap"
)

// SQLiteDirectory is a SQLite implementation of the ContactDirectory
// interface, for single-node deployments that maintain their contact list
// on local disk
type SQLiteDirectory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteDirectory opens (and if needed bootstraps) a SQLite-backed
// known-contacts directory
func NewSQLiteDirectory(dbPath string, logger *zap.Logger) (*SQLiteDirectory, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// COLLATE NOCASE gives the case-insensitive name contract for free
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS known_contacts (
			name TEXT PRIMARY KEY COLLATE NOCASE,
			email_domain TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteDirectory{
		db:     db,
		logger: logger,
	}, nil
}

// Lookup retrieves a contact by display name, case-insensitively
func (d *SQLiteDirectory) Lookup(ctx context.Context, displayName string) (*core.Contact, error) {
	var contact core.Contact

	err := d.db.QueryRowContext(ctx, `
		SELECT name, email_domain
		FROM known_contacts
		WHERE name = ? COLLATE NOCASE
	`, displayName).Scan(&contact.Name, &contact.EmailDomain)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	return &contact, nil
}

// Upsert inserts or replaces a contact entry
func (d *SQLiteDirectory) Upsert(ctx context.Context, contact core.Contact) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO known_contacts (name, email_domain)
		VALUES (?, ?)
	`, contact.Name, contact.EmailDomain)

	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (d *SQLiteDirectory) Close() error {
	return d.db.Close()
}
