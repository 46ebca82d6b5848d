package core

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// ContentRules holds the configured keyword list and the confidence curve
// applied to urgency findings. Injected at construction time so tests and
// tenants can substitute keyword sets without touching package state.
type ContentRules struct {
	Keywords       []string
	BaseConfidence float64
	ConfidenceStep float64
	MaxConfidence  float64
}

// ContentAnalyzer scans subject and body for social-engineering urgency
// language. Confidence increases with the number of distinct matched
// keywords but saturates, reflecting diminishing marginal suspicion.
type ContentAnalyzer struct {
	rules  ContentRules
	folded []string
	logger *zap.Logger
}

// NewContentAnalyzer creates a new content analyzer
func NewContentAnalyzer(rules ContentRules, logger *zap.Logger) *ContentAnalyzer {
	// Pre-fold the keyword list once; matching is case-insensitive
	fold := cases.Fold()
	folded := make([]string, len(rules.Keywords))
	for i, keyword := range rules.Keywords {
		folded[i] = fold.String(keyword)
	}

	return &ContentAnalyzer{
		rules:  rules,
		folded: folded,
		logger: logger,
	}
}

// Analyze scans the subject and body and returns the content category result
func (a *ContentAnalyzer) Analyze(subject, content string) CategoryResult {
	// Casers are stateful, so build one per call to stay safe under
	// concurrent Analyze invocations. Subject and body are matched
	// independently so a multi-word keyword never straddles the two.
	fold := cases.Fold()
	foldedSubject := fold.String(subject)
	foldedContent := fold.String(content)

	matched := make([]string, 0)
	for i, keyword := range a.folded {
		if strings.Contains(foldedSubject, keyword) || strings.Contains(foldedContent, keyword) {
			matched = append(matched, a.rules.Keywords[i])
		}
	}

	if len(matched) == 0 {
		return NewCategoryResult(nil)
	}

	confidence := math.Min(
		a.rules.BaseConfidence+a.rules.ConfidenceStep*float64(len(matched)),
		a.rules.MaxConfidence,
	)

	return NewCategoryResult([]Finding{{
		Kind:       FindingUrgencyIndicators,
		Confidence: confidence,
		Keywords:   matched,
		Description: fmt.Sprintf(
			"Detected %d urgency/social-engineering indicator(s): %s",
			len(matched), strings.Join(matched, ", "),
		),
	}})
}
