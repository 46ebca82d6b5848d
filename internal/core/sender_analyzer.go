package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// displayNameSpoofConfidence is assigned when a known contact's display name
// arrives from a domain other than the contact's canonical one
const displayNameSpoofConfidence = 0.88

// SenderAnalyzer detects display-name spoofing against the known-contacts
// directory. This models the common BEC pattern of matching an executive's
// visible name while sending from an unrelated domain.
type SenderAnalyzer struct {
	directory ContactDirectory
	logger    *zap.Logger
}

// NewSenderAnalyzer creates a new sender analyzer
func NewSenderAnalyzer(directory ContactDirectory, logger *zap.Logger) *SenderAnalyzer {
	return &SenderAnalyzer{
		directory: directory,
		logger:    logger,
	}
}

// Analyze checks the display name against the known-contacts directory.
// An unknown display name produces no finding: absence of evidence is not
// evidence of absence, and the analyzer never penalizes unknown senders.
func (a *SenderAnalyzer) Analyze(ctx context.Context, displayName, senderDomain string) CategoryResult {
	contact, err := a.directory.Lookup(ctx, displayName)
	if err != nil {
		if !errors.Is(err, ErrContactNotFound) {
			// Directory outages degrade to "no match" rather than
			// failing the whole analysis
			a.logger.Warn("contact directory lookup failed",
				zap.String("display_name", displayName),
				zap.Error(err))
		}
		return NewCategoryResult(nil)
	}

	if strings.EqualFold(senderDomain, contact.EmailDomain) {
		return NewCategoryResult(nil)
	}

	return NewCategoryResult([]Finding{{
		Kind:       FindingDisplayNameSpoofing,
		Confidence: displayNameSpoofConfidence,
		Description: fmt.Sprintf(
			"Display name '%s' matches known contact '%s' but sender domain '%s' differs from expected '%s'",
			displayName, contact.Name, senderDomain, contact.EmailDomain,
		),
	}})
}
