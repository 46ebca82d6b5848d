package directory

import (
	"context"
	"sync"

	"github.com/opsdesk/bec-engine/internal/core"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// MemoryDirectory is an in-memory implementation of the ContactDirectory
// interface, seeded from configuration. Suitable for small static contact
// lists and for tests.
type MemoryDirectory struct {
	contacts map[string]core.Contact
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewMemoryDirectory creates a new in-memory directory from a display-name
// to canonical-domain map
func NewMemoryDirectory(contacts map[string]string, logger *zap.Logger) *MemoryDirectory {
	fold := cases.Fold()

	entries := make(map[string]core.Contact, len(contacts))
	for name, domain := range contacts {
		entries[fold.String(name)] = core.Contact{
			Name:        name,
			EmailDomain: domain,
		}
	}

	if len(entries) > 0 {
		logger.Info("Loaded known contacts", zap.Int("count", len(entries)))
	}

	return &MemoryDirectory{
		contacts: entries,
		logger:   logger,
	}
}

// Lookup retrieves a contact by display name, case-insensitively
func (d *MemoryDirectory) Lookup(_ context.Context, displayName string) (*core.Contact, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	contact, ok := d.contacts[cases.Fold().String(displayName)]
	if !ok {
		return nil, core.ErrContactNotFound
	}
	return &contact, nil
}

// Add inserts or replaces a contact entry
func (d *MemoryDirectory) Add(contact core.Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.contacts[cases.Fold().String(contact.Name)] = contact
}
