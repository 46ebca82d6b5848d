package directory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/opsdesk/bec-engine/internal/core"
	"go.uber.org/zap"
)

// MySQLDirectory is a MySQL implementation of the ContactDirectory
// interface, for deployments sharing one contact list across instances
type MySQLDirectory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLDirectory connects to (and if needed bootstraps) a MySQL-backed
// known-contacts directory
func NewMySQLDirectory(dsn string, logger *zap.Logger) (*MySQLDirectory, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	// utf8mb4_unicode_ci collation keeps name lookups case-insensitive
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS known_contacts (
			name VARCHAR(255) PRIMARY KEY,
			email_domain VARCHAR(255) NOT NULL
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLDirectory{
		db:     db,
		logger: logger,
	}, nil
}

// Lookup retrieves a contact by display name, case-insensitively
func (d *MySQLDirectory) Lookup(ctx context.Context, displayName string) (*core.Contact, error) {
	var contact core.Contact

	err := d.db.QueryRowContext(ctx, `
		SELECT name, email_domain
		FROM known_contacts
		WHERE name = ?
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
func (d *MySQLDirectory) Upsert(ctx context.Context, contact core.Contact) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO known_contacts (name, email_domain)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE email_domain = VALUES(email_domain)
	`, contact.Name, contact.EmailDomain)

	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (d *MySQLDirectory) Close() error {
	return d.db.Close()
}
