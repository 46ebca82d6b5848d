package core

import (
	"math"
)

// ScoringConfig holds the category weights and verdict thresholds.
// Owned by the engine instance rather than package globals so tests and
// per-tenant policies can substitute values.
type ScoringConfig struct {
	DomainWeight        float64
	SenderWeight        float64
	ContentWeight       float64
	HighRiskThreshold   int
	MediumRiskThreshold int
}

// RiskScorer aggregates category findings into a single 0-100 score.
//
// The model is a deliberately simple linear combination: per category the
// finding confidences are summed (multiple findings compound rather than
// average), weighted, and totaled. Chosen for auditability in a
// security-review context over a learned classifier.
type RiskScorer struct {
	cfg ScoringConfig
}

// NewRiskScorer creates a new risk scorer
func NewRiskScorer(cfg ScoringConfig) *RiskScorer {
	return &RiskScorer{cfg: cfg}
}

// Score computes the aggregate risk score for an analysis
func (s *RiskScorer) Score(analysis EmailAnalysis) int {
	weighted := s.cfg.DomainWeight*sumConfidences(analysis.DomainAnalysis) +
		s.cfg.SenderWeight*sumConfidences(analysis.SenderAnalysis) +
		s.cfg.ContentWeight*sumConfidences(analysis.ContentAnalysis)

	// Weights and confidences carry at most a few decimal places, so
	// rounding the scaled sum at 1e-2 first neutralizes float error
	// (0.3*0.95*100 is 28.499999999999996 in binary) and half-way
	// values round up as the decimal arithmetic computes them.
	scaled := math.Round(weighted*10000) / 100
	score := int(math.Round(scaled))

	// A category with many findings can exceed 1.0 pre-clamp
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// sumConfidences totals the confidence of all findings in a category
func sumConfidences(category CategoryResult) float64 {
	total := 0.0
	for _, finding := range category.Findings {
		total += finding.Confidence
	}
	return total
}
