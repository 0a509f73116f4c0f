package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
)

func TestScoreDimension_TopDownFirstMatch(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	tests := []struct {
		name          string
		dimension     Dimension
		text          string
		expectedLevel int
		expectedScore float64
	}{
		{
			name:          "level 4 keywords alone never promote to level 5",
			dimension:     TechnologyStack,
			text:          "We standardized on MLflow and Kubeflow for experiment tracking.",
			expectedLevel: 4,
			expectedScore: 72.67, // 60 + (2/3)*19
		},
		{
			name:          "level 5 wins when it qualifies, lower levels not re-checked",
			dimension:     TechnologyStack,
			text:          "SageMaker pipelines with full MLOps and a feature store, plus MLflow.",
			expectedLevel: 5,
			expectedScore: 100.0, // all 3 keywords, density 1.0
		},
		{
			name:          "partial level 2 match interpolates inside the band",
			dimension:     DataInfrastructure,
			text:          "Legacy systems and data silos everywhere.",
			expectedLevel: 2,
			expectedScore: 32.67, // 20 + (2/3)*19
		},
		{
			name:          "single keyword at level 3",
			dimension:     Talent,
			text:          "One data scientist on staff.",
			expectedLevel: 3,
			expectedScore: 49.5, // 40 + (1/2)*19
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scorer.ScoreDimension(tt.dimension, tt.text, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, result.Level)
			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, len(result.MatchedKeywords), result.MatchCount)
		})
	}
}

func TestScoreDimension_ScoreFloor(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	// Text with no keywords for any level falls through to level 1, whose
	// zero-match threshold accepts it; the interpolated score of 0 is
	// floored at 10.
	result, err := scorer.ScoreDimension(DataInfrastructure, "quarterly revenue grew modestly", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Level)
	assert.Equal(t, "Nascent", result.Label)
	assert.Equal(t, 10.0, result.Score)
	assert.Equal(t, 0, result.MatchCount)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestScoreDimension_NoLevelQualifies(t *testing.T) {
	// A rubric whose lowest level demands a match exercises the explicit
	// fallback path.
	strict := map[Dimension][]RubricCriteria{
		TechnologyStack: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 2, Keywords: []string{"sagemaker", "mlops"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 1, Keywords: []string{"manual"}},
		},
	}
	scorer := NewRubricScorer(strict)

	result, err := scorer.ScoreDimension(TechnologyStack, "nothing matches here", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Level)
	assert.Equal(t, 10.0, result.Score)
	assert.Empty(t, result.MatchedKeywords)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Equal(t, "No rubric criteria met", result.Rationale)
}

func TestScoreDimension_ConfidenceCapped(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	// Full keyword density would give 0.5 + 0.4 = 0.9, the cap.
	result, err := scorer.ScoreDimension(Culture, "An innovative, data-driven, fail-fast culture.", nil)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Level)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestScoreDimension_UnknownDimension(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	_, err := scorer.ScoreDimension(Dimension("astrology"), "some text", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryNotImplemented))
}

func TestScoreDimension_CaseInsensitive(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	upper, err := scorer.ScoreDimension(TechnologyStack, "SAGEMAKER AND MLOPS AT SCALE", nil)
	require.NoError(t, err)
	lower, err := scorer.ScoreDimension(TechnologyStack, "sagemaker and mlops at scale", nil)
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestScoreAllDimensions(t *testing.T) {
	scorer := NewRubricScorer(defaultRubrics())

	results, err := scorer.ScoreAllDimensions(map[Dimension]string{
		TechnologyStack:    "mlflow and kubeflow in production",
		DataInfrastructure: "snowflake lakehouse with real-time databricks feeds",
	}, nil)
	require.NoError(t, err)

	require.Len(t, results, len(AllDimensions))
	assert.Equal(t, 4, results[TechnologyStack].Level)
	assert.Equal(t, 5, results[DataInfrastructure].Level)
	// Dimensions without text degrade to the weakest level, not an error.
	assert.Equal(t, 1, results[Talent].Level)
}
