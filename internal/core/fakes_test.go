package core

import (
	"context"
	"errors"
	"strings"
)

// fakeResolver serves canned TXT responses keyed by lookup name.
// Names present in errs fail; names absent from both maps resolve to an
// empty record set.
type fakeResolver struct {
	records map[string][]string
	errs    map[string]error
}

func (r *fakeResolver) LookupTXT(_ context.Context, name string) ([]string, error) {
	if err, ok := r.errs[name]; ok {
		return nil, err
	}
	return r.records[name], nil
}

// authenticatedResolver returns a resolver with valid SPF and DMARC records
// for the given domain
func authenticatedResolver(domain string) *fakeResolver {
	return &fakeResolver{
		records: map[string][]string{
			domain:             {"v=spf1 include:_spf.example.net ~all"},
			"_dmarc." + domain: {"v=DMARC1; p=reject;"},
		},
	}
}

// fakeDirectory serves contacts keyed by lowercased display name
type fakeDirectory struct {
	contacts map[string]Contact
	err      error
}

func (d *fakeDirectory) Lookup(_ context.Context, displayName string) (*Contact, error) {
	if d.err != nil {
		return nil, d.err
	}
	contact, ok := d.contacts[strings.ToLower(displayName)]
	if !ok {
		return nil, ErrContactNotFound
	}
	return &contact, nil
}

var errDNSTimeout = errors.New("lookup timed out")

func defaultScoring() ScoringConfig {
	return ScoringConfig{
		DomainWeight:        0.4,
		SenderWeight:        0.3,
		ContentWeight:       0.3,
		HighRiskThreshold:   70,
		MediumRiskThreshold: 40,
	}
}

func defaultContentRules() ContentRules {
	return ContentRules{
		Keywords: []string{
			"urgent", "wire transfer", "confidential", "action required",
			"verify account", "immediate", "sensitive",
		},
		BaseConfidence: 0.75,
		ConfidenceStep: 0.10,
		MaxConfidence:  0.95,
	}
}

// findingKinds collects the kinds present in a category, for assertions
// that ignore ordering
func findingKinds(category CategoryResult) map[FindingKind]Finding {
	kinds := make(map[FindingKind]Finding)
	for _, finding := range category.Findings {
		kinds[finding.Kind] = finding
	}
	return kinds
}
