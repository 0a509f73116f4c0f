package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFactor_Calculate(t *testing.T) {
	calc := NewPositionFactorCalculator(DefaultEngineConfig())

	tests := []struct {
		name       string
		vrScore    float64
		sector     string
		percentile float64
		expected   float64
	}{
		{
			name:       "strong financial above sector average",
			vrScore:    75.0,
			sector:     "financial_services",
			percentile: 0.85,
			expected:   0.52, // 0.6*0.40 + 0.4*0.70
		},
		{
			name:       "retailer well above its peers",
			vrScore:    68.0,
			sector:     "retail",
			percentile: 0.80,
			expected:   0.48, // 0.6*0.40 + 0.4*0.60
		},
		{
			name:       "small retailer below average",
			vrScore:    45.0,
			sector:     "retail",
			percentile: 0.35,
			expected:   -0.16, // 0.6*(-0.06) + 0.4*(-0.30)
		},
		{
			name:       "unknown sector falls back to neutral average",
			vrScore:    50.0,
			sector:     "space_mining",
			percentile: 0.5,
			expected:   0.0,
		},
		{
			name:       "extreme scores clamp the vr component",
			vrScore:    100.0,
			sector:     "manufacturing", // average 45, raw spread 1.1 clamps to 1
			percentile: 1.0,
			expected:   1.0,
		},
		{
			name:       "bottom of the market",
			vrScore:    0.0,
			sector:     "technology", // average 65, spread -1.3 clamps to -1
			percentile: 0.0,
			expected:   -1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(tt.vrScore, tt.sector, tt.percentile)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, -1.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestMarketCapPercentile(t *testing.T) {
	tests := []struct {
		name      string
		marketCap float64
		expected  float64
		delta     float64
	}{
		{name: "mega cap at three trillion", marketCap: 3_000_000_000_000, expected: 1.0, delta: 1e-9},
		{name: "mega cap floor", marketCap: 200_000_000_000, expected: 0.9067, delta: 0.0001},
		{name: "large cap midpoint", marketCap: 105_000_000_000, expected: 0.80, delta: 1e-9},
		{name: "mid cap floor", marketCap: 2_000_000_000, expected: 0.50, delta: 1e-9},
		{name: "small cap floor", marketCap: 300_000_000, expected: 0.30, delta: 1e-9},
		{name: "emerging", marketCap: 150_000_000, expected: 0.15, delta: 1e-9},
		{name: "zero", marketCap: 0, expected: 0.0, delta: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarketCapPercentile(tt.marketCap)
			assert.InDelta(t, tt.expected, got, tt.delta)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
