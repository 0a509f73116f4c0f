package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvidence(t *testing.T, source SignalSource, rawScore, confidence float64, count int) EvidenceScore {
	t.Helper()
	ev, err := NewEvidenceScore(source, rawScore, confidence, count)
	require.NoError(t, err)
	return ev
}

func TestMapEvidence_SingleSource(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	// technology_hiring routes 0.70 to talent, 0.20 to technology_stack,
	// 0.10 to culture with reliability 0.85.
	result := mapper.MapEvidence([]EvidenceScore{
		mustEvidence(t, TechnologyHiring, 80, 0.9, 12),
	})

	require.Len(t, result, len(AllDimensions))

	talent := result[Talent]
	assert.Equal(t, 80.0, talent.Score)
	assert.Equal(t, 0.54, talent.TotalWeight) // 0.70 * 0.9 * 0.85
	assert.Equal(t, 0.54, talent.Confidence)
	assert.Equal(t, []SignalSource{TechnologyHiring}, talent.ContributingSources)
	assert.False(t, talent.Defaulted)

	tech := result[TechnologyStack]
	assert.Equal(t, 80.0, tech.Score)
	assert.Equal(t, 0.15, tech.TotalWeight) // 0.20 * 0.9 * 0.85

	culture := result[Culture]
	assert.Equal(t, 80.0, culture.Score)
	assert.Equal(t, 0.08, culture.TotalWeight) // 0.10 * 0.9 * 0.85

	// Untouched dimensions fall back to the neutral default.
	for _, dim := range []Dimension{DataInfrastructure, AIGovernance, Leadership, UseCasePortfolio} {
		ds := result[dim]
		assert.True(t, ds.Defaulted, "dimension %s", dim)
		assert.Equal(t, 50.0, ds.Score)
		assert.Equal(t, 0.0, ds.Confidence)
		assert.Empty(t, ds.ContributingSources)
	}
}

func TestMapEvidence_EmptyEvidence(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	result := mapper.MapEvidence(nil)

	require.Len(t, result, len(AllDimensions))
	for _, dim := range AllDimensions {
		ds := result[dim]
		assert.True(t, ds.Defaulted)
		assert.Equal(t, 50.0, ds.Score)
		assert.Equal(t, 0.0, ds.TotalWeight)
		assert.Equal(t, 0.0, ds.Confidence)
	}
}

func TestMapEvidence_UnknownSourceSkipped(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	result := mapper.MapEvidence([]EvidenceScore{
		{Source: SignalSource("carrier_pigeon"), RawScore: 99, Confidence: 1.0},
	})

	for _, dim := range AllDimensions {
		assert.True(t, result[dim].Defaulted, "dimension %s", dim)
	}
}

func TestMapEvidence_OrderInvariance(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	evidence := []EvidenceScore{
		mustEvidence(t, TechnologyHiring, 72.5, 0.85, 14),
		mustEvidence(t, GlassdoorReviews, 61.3, 0.55, 40),
		mustEvidence(t, SECItem1A, 44.0, 0.95, 3),
		mustEvidence(t, BoardComposition, 58.0, 0.9, 9),
		mustEvidence(t, InnovationActivity, 83.2, 0.7, 21),
		mustEvidence(t, TechnologyHiring, 66.0, 0.6, 7),
	}

	baseline := mapper.MapEvidence(evidence)

	permutations := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 5, 1, 4, 3},
		{3, 5, 1, 4, 0, 2},
	}
	for _, perm := range permutations {
		shuffled := make([]EvidenceScore, len(evidence))
		for i, j := range perm {
			shuffled[i] = evidence[j]
		}
		// Bit-identical, not merely approximately equal.
		assert.Equal(t, baseline, mapper.MapEvidence(shuffled))
	}
}

func TestMapEvidence_WeightAndScoreBounds(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	// Pile maximum-confidence evidence from every source onto the table;
	// reported weights must still cap at 1.0 and scores stay in range.
	var evidence []EvidenceScore
	for _, src := range AllSignalSources {
		evidence = append(evidence, mustEvidence(t, src, 100, 1.0, 50))
		evidence = append(evidence, mustEvidence(t, src, 100, 1.0, 50))
	}

	result := mapper.MapEvidence(evidence)
	for _, dim := range AllDimensions {
		ds := result[dim]
		assert.LessOrEqual(t, ds.TotalWeight, 1.0)
		assert.LessOrEqual(t, ds.Confidence, 1.0)
		assert.GreaterOrEqual(t, ds.Score, 0.0)
		assert.LessOrEqual(t, ds.Score, 100.0)
	}
}

func TestMapEvidence_MultipleSourcesWeightedAverage(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	// Culture receives 0.10*0.85 from technology_hiring and 0.80*0.60 from
	// glassdoor_reviews at confidence 1.0. Weighted average:
	// (90*0.085 + 40*0.48) / (0.085 + 0.48) = 47.52...
	result := mapper.MapEvidence([]EvidenceScore{
		mustEvidence(t, TechnologyHiring, 90, 1.0, 10),
		mustEvidence(t, GlassdoorReviews, 40, 1.0, 25),
	})

	culture := result[Culture]
	assert.InDelta(t, 47.52, culture.Score, 0.01)
	assert.Equal(t, []SignalSource{TechnologyHiring, GlassdoorReviews}, culture.ContributingSources)
	assert.False(t, culture.Defaulted)
}

func TestCoverageReport(t *testing.T) {
	mapper := NewEvidenceMapper(defaultMappings(), nil)

	report := mapper.CoverageReport([]EvidenceScore{
		mustEvidence(t, SECItem1A, 70, 0.9, 4),
	})

	// sec_item_1a touches governance (0.80) and data_infrastructure (0.20).
	assert.True(t, report[AIGovernance].HasEvidence)
	assert.Equal(t, 1, report[AIGovernance].SourceCount)
	assert.True(t, report[DataInfrastructure].HasEvidence)
	assert.False(t, report[Talent].HasEvidence)
	assert.Equal(t, 0, report[Talent].SourceCount)
	assert.Equal(t, 0.0, report[Talent].TotalWeight)
}

func TestNewEvidenceScore_Validation(t *testing.T) {
	tests := []struct {
		name       string
		rawScore   float64
		confidence float64
		count      int
		wantErr    bool
	}{
		{name: "valid", rawScore: 50, confidence: 0.5, count: 3, wantErr: false},
		{name: "raw score at bounds", rawScore: 100, confidence: 1.0, count: 0, wantErr: false},
		{name: "raw score too high", rawScore: 100.01, confidence: 0.5, count: 1, wantErr: true},
		{name: "raw score negative", rawScore: -1, confidence: 0.5, count: 1, wantErr: true},
		{name: "confidence too high", rawScore: 50, confidence: 1.01, count: 1, wantErr: true},
		{name: "confidence negative", rawScore: 50, confidence: -0.1, count: 1, wantErr: true},
		{name: "negative evidence count", rawScore: 50, confidence: 0.5, count: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEvidenceScore(TechnologyHiring, tt.rawScore, tt.confidence, tt.count)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
