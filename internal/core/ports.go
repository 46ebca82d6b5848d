package core

import (
	"context"
	"errors"
)

// ErrContactNotFound is returned by a ContactDirectory when no contact
// matches the display name
var ErrContactNotFound = errors.New("contact not found")

// Contact represents a known-contacts directory entry mapping a display
// name to its canonical sending domain
type Contact struct {
	Name        string
	EmailDomain string
}

// ContactDirectory defines the interface for known-contacts lookups.
// Lookup is case-insensitive on the display name and returns
// ErrContactNotFound when no entry matches.
type ContactDirectory interface {
	Lookup(ctx context.Context, displayName string) (*Contact, error)
}

// TXTResolver defines the interface for DNS TXT record resolution
type TXTResolver interface {
	// LookupTXT returns the TXT records for a name, or an error when
	// resolution fails (timeout, NXDOMAIN, server failure)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}
