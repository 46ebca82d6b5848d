package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Confidence assigned to each domain-level finding. These are per-rule
// constants of the detection model, not tunables.
const (
	lookalikeConfidence    = 0.92
	missingSPFConfidence   = 0.85
	missingDMARCConfidence = 0.80
	spfErrorConfidence     = 0.75
	dmarcErrorConfidence   = 0.70
)

// DomainAnalyzer evaluates the legitimacy of the sending domain.
//
// It runs three independent checks: lookalike-domain comparison against the
// claimed reference domains, SPF record presence, and DMARC record presence.
// The two DNS-backed checks are network bound, so all three checks fan out
// concurrently and are joined before the category result is assembled. A
// failure in one check never suppresses the findings of the others.
type DomainAnalyzer struct {
	resolver TXTResolver
	logger   *zap.Logger
}

// NewDomainAnalyzer creates a new domain analyzer
func NewDomainAnalyzer(resolver TXTResolver, logger *zap.Logger) *DomainAnalyzer {
	return &DomainAnalyzer{
		resolver: resolver,
		logger:   logger,
	}
}

// Analyze runs all domain checks against the sender domain
func (a *DomainAnalyzer) Analyze(ctx context.Context, senderDomain string, legitimateDomains []string) CategoryResult {
	checks := []func(context.Context) []Finding{
		func(context.Context) []Finding {
			return a.checkLookalike(senderDomain, legitimateDomains)
		},
		func(ctx context.Context) []Finding {
			return a.checkSPF(ctx, senderDomain)
		},
		func(ctx context.Context) []Finding {
			return a.checkDMARC(ctx, senderDomain)
		},
	}

	results := make(chan []Finding, len(checks))
	var wg sync.WaitGroup

	for _, check := range checks {
		wg.Add(1)
		go func(check func(context.Context) []Finding) {
			defer wg.Done()
			// A panicking check loses only its own findings
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("domain check aborted",
						zap.String("sender_domain", senderDomain),
						zap.Any("panic", r))
				}
			}()
			results <- check(ctx)
		}(check)
	}

	wg.Wait()
	close(results)

	findings := make([]Finding, 0)
	for fs := range results {
		findings = append(findings, fs...)
	}

	return NewCategoryResult(findings)
}

// checkLookalike flags sender domains that collapse to a reference domain
// once hyphens are removed. This catches hyphen-insertion tricks such as
// "examplecorp.com" vs "example-corp.com". Character substitution, added
// TLDs and Unicode homoglyphs are intentionally out of scope.
func (a *DomainAnalyzer) checkLookalike(senderDomain string, legitimateDomains []string) []Finding {
	findings := make([]Finding, 0)

	for _, reference := range legitimateDomains {
		if strings.EqualFold(senderDomain, reference) {
			continue
		}
		if normalizeDomain(senderDomain) == normalizeDomain(reference) {
			findings = append(findings, Finding{
				Kind:       FindingLookalikeDomain,
				Confidence: lookalikeConfidence,
				Description: fmt.Sprintf(
					"Sender domain '%s' is a lookalike of legitimate domain '%s'",
					senderDomain, reference,
				),
			})
		}
	}

	return findings
}

// checkSPF resolves the sender domain's TXT records and flags the absence
// of an SPF policy. A resolution failure is itself mildly suspicious and is
// reported as a dns_error finding rather than propagated.
func (a *DomainAnalyzer) checkSPF(ctx context.Context, senderDomain string) []Finding {
	records, err := a.resolver.LookupTXT(ctx, senderDomain)
	if err != nil {
		a.logger.Debug("SPF lookup failed",
			zap.String("sender_domain", senderDomain),
			zap.Error(err))
		return []Finding{{
			Kind:       FindingDNSError,
			Confidence: spfErrorConfidence,
			Description: fmt.Sprintf(
				"DNS resolution failed during SPF check for '%s': %v", senderDomain, err,
			),
		}}
	}

	for _, record := range records {
		if strings.HasPrefix(record, "v=spf1") {
			return nil
		}
	}

	return []Finding{{
		Kind:       FindingMissingSPF,
		Confidence: missingSPFConfidence,
		Description: fmt.Sprintf(
			"No SPF record published for sender domain '%s'", senderDomain,
		),
	}}
}

// checkDMARC resolves _dmarc.<domain> and flags the absence of a DMARC policy
func (a *DomainAnalyzer) checkDMARC(ctx context.Context, senderDomain string) []Finding {
	dmarcDomain := "_dmarc." + senderDomain

	records, err := a.resolver.LookupTXT(ctx, dmarcDomain)
	if err != nil {
		a.logger.Debug("DMARC lookup failed",
			zap.String("sender_domain", senderDomain),
			zap.Error(err))
		return []Finding{{
			Kind:       FindingDNSError,
			Confidence: dmarcErrorConfidence,
			Description: fmt.Sprintf(
				"DNS resolution failed during DMARC check for '%s': %v", senderDomain, err,
			),
		}}
	}

	for _, record := range records {
		if strings.HasPrefix(record, "v=DMARC1") {
			return nil
		}
	}

	return []Finding{{
		Kind:       FindingMissingDMARC,
		Confidence: missingDMARCConfidence,
		Description: fmt.Sprintf(
			"No DMARC record published for sender domain '%s'", senderDomain,
		),
	}}
}

// normalizeDomain lowercases a domain and strips hyphen characters so that
// hyphen-insertion lookalikes compare equal
func normalizeDomain(domain string) string {
	return strings.ReplaceAll(strings.ToLower(domain), "-", "")
}
