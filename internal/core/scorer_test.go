package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskScorer_Score(t *testing.T) {
	scorer := NewRiskScorer(defaultScoring())

	tests := []struct {
		name          string
		analysis      EmailAnalysis
		expectedScore int
	}{
		{
			name:          "No findings - zero score",
			analysis:      EmailAnalysis{},
			expectedScore: 0,
		},
		{
			name: "Content-only finding",
			analysis: EmailAnalysis{
				ContentAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingUrgencyIndicators, Confidence: 0.95},
				}),
			},
			// 0.3 * 0.95 * 100 = 28.5, rounds to 29
			expectedScore: 29,
		},
		{
			name: "Half-way decimal values round up",
			analysis: EmailAnalysis{
				ContentAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingUrgencyIndicators, Confidence: 0.85},
				}),
			},
			// 0.3 * 0.85 * 100 = 25.5 exactly in decimal arithmetic;
			// binary float error must not pull it down to 25
			expectedScore: 26,
		},
		{
			name: "Sender-only finding",
			analysis: EmailAnalysis{
				SenderAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingDisplayNameSpoofing, Confidence: 0.88},
				}),
			},
			// 0.3 * 0.88 * 100 = 26.4, rounds to 26
			expectedScore: 26,
		},
		{
			name: "Findings in one category compound",
			analysis: EmailAnalysis{
				DomainAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingMissingSPF, Confidence: 0.85},
					{Kind: FindingMissingDMARC, Confidence: 0.80},
				}),
			},
			// 0.4 * (0.85 + 0.80) * 100 = 66
			expectedScore: 66,
		},
		{
			name: "All categories combine",
			analysis: EmailAnalysis{
				DomainAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingMissingSPF, Confidence: 0.85},
				}),
				SenderAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingDisplayNameSpoofing, Confidence: 0.88},
				}),
				ContentAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingUrgencyIndicators, Confidence: 0.85},
				}),
			},
			// 0.4*0.85 + 0.3*0.88 + 0.3*0.85 = 0.859 -> 86
			expectedScore: 86,
		},
		{
			name: "Heavy domain category clamps at 100",
			analysis: EmailAnalysis{
				DomainAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingLookalikeDomain, Confidence: 0.92},
					{Kind: FindingMissingSPF, Confidence: 0.85},
					{Kind: FindingMissingDMARC, Confidence: 0.80},
				}),
				SenderAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingDisplayNameSpoofing, Confidence: 0.88},
				}),
				ContentAnalysis: NewCategoryResult([]Finding{
					{Kind: FindingUrgencyIndicators, Confidence: 0.95},
				}),
			},
			expectedScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.analysis)
			assert.Equal(t, tt.expectedScore, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestRiskScorer_CustomWeights(t *testing.T) {
	scorer := NewRiskScorer(ScoringConfig{
		DomainWeight:  1.0,
		SenderWeight:  0,
		ContentWeight: 0,
	})

	analysis := EmailAnalysis{
		DomainAnalysis: NewCategoryResult([]Finding{
			{Kind: FindingMissingSPF, Confidence: 0.5},
		}),
		ContentAnalysis: NewCategoryResult([]Finding{
			{Kind: FindingUrgencyIndicators, Confidence: 0.95},
		}),
	}

	assert.Equal(t, 50, scorer.Score(analysis))
}
