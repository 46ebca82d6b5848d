package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentAnalyzer_Analyze(t *testing.T) {
	analyzer := NewContentAnalyzer(defaultContentRules(), zap.NewNop())

	tests := []struct {
		name             string
		subject          string
		content          string
		expectedKeywords []string
		confidence       float64
	}{
		{
			name:    "Benign content - no finding",
			subject: "Quarterly planning notes",
			content: "Attached are the notes from yesterday's planning session.",
		},
		{
			name:             "Single keyword",
			subject:          "Question about the invoice",
			content:          "This is urgent, please respond today.",
			expectedKeywords: []string{"urgent"},
			confidence:       0.85,
		},
		{
			name:             "Two keywords",
			subject:          "Urgent request",
			content:          "Please initiate the wire transfer before noon.",
			expectedKeywords: []string{"urgent", "wire transfer"},
			confidence:       0.95,
		},
		{
			name:    "Confidence saturates with many keywords",
			subject: "Urgent: action required",
			content: "Confidential wire transfer. Verify account immediately. This is sensitive.",
			expectedKeywords: []string{
				"urgent", "wire transfer", "confidential", "action required",
				"verify account", "immediate", "sensitive",
			},
			confidence: 0.95,
		},
		{
			name:             "Matching is case-insensitive",
			subject:          "URGENT",
			content:          "WIRE TRANSFER needed",
			expectedKeywords: []string{"urgent", "wire transfer"},
			confidence:       0.95,
		},
		{
			name:             "Keyword present in both subject and body counts once",
			subject:          "urgent",
			content:          "still urgent",
			expectedKeywords: []string{"urgent"},
			confidence:       0.85,
		},
		{
			name:    "Multi-word keyword never straddles subject and body",
			subject: "Approving the wire",
			content: "transfer of the quarterly funds as discussed",
		},
		{
			name:             "Multi-word keyword within a single field still matches",
			subject:          "Approving the wire transfer",
			content:          "as discussed",
			expectedKeywords: []string{"wire transfer"},
			confidence:       0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(tt.subject, tt.content)

			if len(tt.expectedKeywords) == 0 {
				assert.False(t, result.IsSuspicious)
				assert.Empty(t, result.Findings, "Expected no finding for benign content")
				return
			}

			require.True(t, result.IsSuspicious)
			require.Len(t, result.Findings, 1, "Content category emits a single finding")

			finding := result.Findings[0]
			assert.Equal(t, FindingUrgencyIndicators, finding.Kind)
			assert.InDelta(t, tt.confidence, finding.Confidence, 1e-9)
			assert.ElementsMatch(t, tt.expectedKeywords, finding.Keywords)
		})
	}
}

func TestContentAnalyzer_CustomRules(t *testing.T) {
	rules := ContentRules{
		Keywords:       []string{"gift card"},
		BaseConfidence: 0.50,
		ConfidenceStep: 0.20,
		MaxConfidence:  0.60,
	}
	analyzer := NewContentAnalyzer(rules, zap.NewNop())

	result := analyzer.Analyze("Buy gift card", "")

	require.Len(t, result.Findings, 1)
	// 0.50 + 0.20 exceeds the cap
	assert.InDelta(t, 0.60, result.Findings[0].Confidence, 1e-9)
}
