package core

import (
	"fmt"
)

// VerdictGenerator converts a risk score and category findings into the
// tiered verdict, indicators of compromise, and recommended response actions
type VerdictGenerator struct {
	cfg ScoringConfig
}

// NewVerdictGenerator creates a new verdict generator
func NewVerdictGenerator(cfg ScoringConfig) *VerdictGenerator {
	return &VerdictGenerator{cfg: cfg}
}

// Verdict maps a final integer score to its risk tier. The high threshold
// is inclusive: a score of exactly HighRiskThreshold is high_risk.
func (g *VerdictGenerator) Verdict(score int) Verdict {
	switch {
	case score >= g.cfg.HighRiskThreshold:
		return VerdictHighRisk
	case score >= g.cfg.MediumRiskThreshold:
		return VerdictMediumRisk
	default:
		return VerdictLowRisk
	}
}

// Outputs derives IOCs and recommended actions from the category results.
// One deterministic rule per category; confidence labels are assigned per
// rule, not computed from the numeric finding confidences.
func (g *VerdictGenerator) Outputs(submission EmailSubmission, senderDomain string, analysis EmailAnalysis) ([]IOC, []RecommendedAction) {
	iocs := make([]IOC, 0)
	actions := make([]RecommendedAction, 0)

	if analysis.DomainAnalysis.IsSuspicious {
		iocs = append(iocs, IOC{
			Type:        IOCTypeDomain,
			Value:       senderDomain,
			Description: fmt.Sprintf("Suspicious sending domain '%s'", senderDomain),
			Confidence:  ConfidenceHigh,
		})
		// Blocking a domain is a human-reviewed decision
		actions = append(actions, RecommendedAction{
			Action:      "block_sender",
			Description: fmt.Sprintf("Block sender domain '%s' at the mail gateway", senderDomain),
			Automated:   false,
		})
	}

	if analysis.SenderAnalysis.IsSuspicious {
		// No action is attached for sender-only findings. Flagged for
		// product review; preserved as current behavior.
		iocs = append(iocs, IOC{
			Type:        IOCTypeEmail,
			Value:       submission.SenderEmail,
			Description: fmt.Sprintf("Sender address '%s' impersonates a known contact", submission.SenderEmail),
			Confidence:  ConfidenceHigh,
		})
	}

	if analysis.ContentAnalysis.IsSuspicious {
		iocs = append(iocs, IOC{
			Type:        IOCTypePattern,
			Value:       submission.Subject,
			Description: fmt.Sprintf("Social-engineering language in message with subject '%s'", submission.Subject),
			Confidence:  ConfidenceMedium,
		})
		actions = append(actions,
			RecommendedAction{
				Action:      "alert_recipient",
				Description: "Notify the recipient that this message shows social-engineering indicators",
				Automated:   true,
			},
			RecommendedAction{
				Action:      "add_to_watchlist",
				Description: fmt.Sprintf("Add sender '%s' to the monitoring watchlist", submission.SenderEmail),
				Automated:   true,
			},
		)
	}

	return iocs, actions
}
