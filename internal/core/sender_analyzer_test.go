package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSenderAnalyzer_Analyze(t *testing.T) {
	directory := &fakeDirectory{
		contacts: map[string]Contact{
			"jane doe": {Name: "Jane Doe", EmailDomain: "example-corp.com"},
		},
	}

	tests := []struct {
		name            string
		displayName     string
		senderDomain    string
		expectDetection bool
	}{
		{
			name:            "Known contact from wrong domain",
			displayName:     "Jane Doe",
			senderDomain:    "attacker.net",
			expectDetection: true,
		},
		{
			name:            "Known contact from canonical domain",
			displayName:     "Jane Doe",
			senderDomain:    "example-corp.com",
			expectDetection: false,
		},
		{
			name:            "Canonical domain comparison is case-insensitive",
			displayName:     "Jane Doe",
			senderDomain:    "Example-Corp.COM",
			expectDetection: false,
		},
		{
			name:            "Name match is case-insensitive",
			displayName:     "JANE DOE",
			senderDomain:    "attacker.net",
			expectDetection: true,
		},
		{
			name:            "Unknown sender is not penalized",
			displayName:     "John Smith",
			senderDomain:    "attacker.net",
			expectDetection: false,
		},
		{
			name:            "Empty display name",
			displayName:     "",
			senderDomain:    "example-corp.com",
			expectDetection: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewSenderAnalyzer(directory, zap.NewNop())

			result := analyzer.Analyze(context.Background(), tt.displayName, tt.senderDomain)

			if tt.expectDetection {
				require.Len(t, result.Findings, 1)
				finding := result.Findings[0]
				assert.Equal(t, FindingDisplayNameSpoofing, finding.Kind)
				assert.InDelta(t, 0.88, finding.Confidence, 1e-9)
			} else {
				assert.False(t, result.IsSuspicious)
				assert.Empty(t, result.Findings)
			}
		})
	}
}

func TestSenderAnalyzer_DirectoryError(t *testing.T) {
	// A directory outage degrades to "no match", never a failed analysis
	directory := &fakeDirectory{err: errors.New("connection refused")}
	analyzer := NewSenderAnalyzer(directory, zap.NewNop())

	result := analyzer.Analyze(context.Background(), "Jane Doe", "attacker.net")

	assert.False(t, result.IsSuspicious)
	assert.Empty(t, result.Findings)
}
