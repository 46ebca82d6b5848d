package core

import (
	"time"
)

// EmailSubmission represents a single parsed inbound email handed to the engine.
// Callers are expected to have validated syntax upstream; the engine only
// fails safe when assumptions are violated.
type EmailSubmission struct {
	SenderEmail string `json:"sender_email"`
	DisplayName string `json:"display_name"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	// LegitimateDomains are the reference domains the sender claims to
	// represent, used for lookalike detection. May be empty.
	LegitimateDomains []string `json:"legitimate_domains,omitempty"`
}

// FindingKind identifies the type of a single analysis finding
type FindingKind string

const (
	FindingLookalikeDomain     FindingKind = "lookalike_domain"
	FindingMissingSPF          FindingKind = "missing_spf"
	FindingMissingDMARC        FindingKind = "missing_dmarc"
	FindingDNSError            FindingKind = "dns_error"
	FindingDisplayNameSpoofing FindingKind = "display_name_spoofing"
	FindingUrgencyIndicators   FindingKind = "urgency_indicators"
)

// Finding represents a single detection signal produced by an analyzer
type Finding struct {
	Kind        FindingKind `json:"kind"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"` // 0.0 to 1.0
	// Keywords carries the matched terms for urgency_indicators findings
	Keywords []string `json:"keywords,omitempty"`
}

// CategoryResult groups the findings of one analyzer
type CategoryResult struct {
	IsSuspicious bool      `json:"is_suspicious"`
	Findings     []Finding `json:"findings"`
}

// NewCategoryResult builds a CategoryResult, deriving the suspicion flag
// from whether any findings are present
func NewCategoryResult(findings []Finding) CategoryResult {
	if findings == nil {
		findings = []Finding{}
	}
	return CategoryResult{
		IsSuspicious: len(findings) > 0,
		Findings:     findings,
	}
}

// EmailAnalysis holds the per-category results of one analysis run
type EmailAnalysis struct {
	DomainAnalysis  CategoryResult `json:"domain_analysis"`
	SenderAnalysis  CategoryResult `json:"sender_analysis"`
	ContentAnalysis CategoryResult `json:"content_analysis"`
}

// IOCType identifies the artifact class of an indicator of compromise
type IOCType string

const (
	IOCTypeEmail   IOCType = "email"
	IOCTypeDomain  IOCType = "domain"
	IOCTypePattern IOCType = "pattern"
)

// ConfidenceLabel is the display-oriented confidence tier attached to IOCs
type ConfidenceLabel string

const (
	ConfidenceLow    ConfidenceLabel = "low"
	ConfidenceMedium ConfidenceLabel = "medium"
	ConfidenceHigh   ConfidenceLabel = "high"
)

// IOC represents an indicator of compromise suitable for blocklisting or correlation
type IOC struct {
	Type        IOCType         `json:"type"`
	Value       string          `json:"value"`
	Description string          `json:"description"`
	Confidence  ConfidenceLabel `json:"confidence"`
}

// RecommendedAction represents a response action suggested by the engine
type RecommendedAction struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	// Automated indicates the action can be executed without human approval
	Automated bool `json:"automated"`
}

// Status represents the terminal state of an analysis run
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Verdict is the tiered classification derived from the risk score
type Verdict string

const (
	VerdictLowRisk    Verdict = "low_risk"
	VerdictMediumRisk Verdict = "medium_risk"
	VerdictHighRisk   Verdict = "high_risk"
)

// AnalysisReport is the engine's complete output for one submission
type AnalysisReport struct {
	RequestID          string              `json:"request_id"`
	Timestamp          time.Time           `json:"timestamp"`
	Status             Status              `json:"status"`
	RiskScore          int                 `json:"risk_score"` // 0 to 100
	Verdict            Verdict             `json:"verdict"`
	Analysis           EmailAnalysis       `json:"analysis"`
	IOCs               []IOC               `json:"iocs"`
	RecommendedActions []RecommendedAction `json:"recommended_actions"`
}
