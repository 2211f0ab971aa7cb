//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"closeout-market/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		remaining time.Duration
		optIn     bool
		expected  pricing.Window
	}{
		{
			name:      "exactly thirty minutes left with opt-in is golden",
			remaining: 30 * time.Minute,
			optIn:     true,
			expected:  pricing.Window{IsGoldenTime: true},
		},
		{
			name:      "one second over thirty minutes is not golden",
			remaining: 30*time.Minute + time.Second,
			optIn:     true,
			expected:  pricing.Window{},
		},
		{
			name:      "one nanosecond left with opt-in is golden",
			remaining: time.Nanosecond,
			optIn:     true,
			expected:  pricing.Window{IsGoldenTime: true},
		},
		{
			name:      "inside window without opt-in is not golden",
			remaining: 10 * time.Minute,
			optIn:     false,
			expected:  pricing.Window{},
		},
		{
			name:      "expiry instant is expired and not golden",
			remaining: 0,
			optIn:     true,
			expected:  pricing.Window{IsExpired: true},
		},
		{
			name:      "past expiry is expired",
			remaining: -time.Hour,
			optIn:     false,
			expected:  pricing.Window{IsExpired: true},
		},
		{
			name:      "far from expiry",
			remaining: 6 * time.Hour,
			optIn:     true,
			expected:  pricing.Window{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := pricing.Evaluate(now, now.Add(tc.remaining), tc.optIn)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, !tc.expected.IsExpired, actual.Reservable())
		})
	}
}
