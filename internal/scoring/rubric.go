package scoring

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
)

// Rubric scoring constants.
const (
	rubricScoreFloor      = 10.0
	rubricNoMatchConf     = 0.3
	rubricConfidenceBase  = 0.5
	rubricConfidenceSlope = 0.4
	rubricConfidenceCap   = 0.9
)

// RubricResult is the outcome of classifying one text block against one
// dimension's rubric.
type RubricResult struct {
	Dimension       Dimension `json:"dimension"`
	Level           int       `json:"level"`
	Label           string    `json:"label"`
	Score           float64   `json:"score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MatchCount      int       `json:"keyword_match_count"`
	Confidence      float64   `json:"confidence"`
	Rationale       string    `json:"rationale"`
}

// RubricScorer classifies free text into one of five maturity levels per
// dimension. Stateless apart from the injected read-only rubric tables.
type RubricScorer struct {
	rubrics map[Dimension][]RubricCriteria
}

// NewRubricScorer creates a scorer over the given rubric tables.
func NewRubricScorer(rubrics map[Dimension][]RubricCriteria) *RubricScorer {
	return &RubricScorer{rubrics: rubrics}
}

// ScoreDimension scores a text block against one dimension's rubric.
//
// Levels are checked highest first; the first level whose keyword match
// count reaches its minimum wins, with no re-checking of lower levels.
// The score interpolates inside the winning level's band by keyword
// density and is floored at 10.0 so a weak match never reads as zero
// evidence. Metrics are accepted for parity with upstream callers but do
// not currently influence the match.
func (r *RubricScorer) ScoreDimension(dimension Dimension, text string, metrics map[string]float64) (RubricResult, error) {
	levels, ok := r.rubrics[dimension]
	if !ok {
		return RubricResult{}, apperrors.NewNotImplementedError(
			fmt.Sprintf("rubric not defined for dimension: %s", dimension))
	}

	lowered := strings.ToLower(text)

	for _, crit := range levels {
		matched := make([]string, 0, len(crit.Keywords))
		for _, kw := range crit.Keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, kw)
			}
		}

		if len(matched) < crit.MinKeywordMatches {
			continue
		}

		totalKeywords := len(crit.Keywords)
		if totalKeywords == 0 {
			totalKeywords = 1
		}
		density := float64(len(matched)) / float64(totalKeywords)
		score := crit.MinScore + density*(crit.MaxScore-crit.MinScore)
		score = math.Max(rubricScoreFloor, round2(score))

		return RubricResult{
			Dimension:       dimension,
			Level:           crit.Level,
			Label:           crit.Label,
			Score:           score,
			MatchedKeywords: matched,
			MatchCount:      len(matched),
			Confidence:      math.Min(rubricConfidenceCap, rubricConfidenceBase+density*rubricConfidenceSlope),
			Rationale:       fmt.Sprintf("Matched %d keywords: %s", len(matched), strings.Join(firstN(matched, 3), ", ")),
		}, nil
	}

	// Nothing qualified: weakest level, floor score, low confidence.
	lowest := levels[len(levels)-1]
	return RubricResult{
		Dimension:       dimension,
		Level:           lowest.Level,
		Label:           lowest.Label,
		Score:           rubricScoreFloor,
		MatchedKeywords: []string{},
		MatchCount:      0,
		Confidence:      rubricNoMatchConf,
		Rationale:       "No rubric criteria met",
	}, nil
}

// ScoreAllDimensions scores every configured dimension against its text
// block; dimensions without text are scored against the empty string.
func (r *RubricScorer) ScoreAllDimensions(textByDimension map[Dimension]string, metricsByDimension map[Dimension]map[string]float64) (map[Dimension]RubricResult, error) {
	results := make(map[Dimension]RubricResult, len(r.rubrics))
	for _, dim := range AllDimensions {
		if _, ok := r.rubrics[dim]; !ok {
			continue
		}
		res, err := r.ScoreDimension(dim, textByDimension[dim], metricsByDimension[dim])
		if err != nil {
			return nil, err
		}
		results[dim] = res
	}
	return results, nil
}

func firstN(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}

func defaultRubrics() map[Dimension][]RubricCriteria {
	return map[Dimension][]RubricCriteria{
		Talent: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 3, Keywords: []string{
				"ml platform", "ai research", "large team", ">20 specialists",
				"ai leadership", "principal ml", "staff ml"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"data science team", "ml engineers", "10-20", "active hiring", "retention"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"data scientist", "growing team"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"junior", "contractor", "turnover"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"no data scientist", "vendor only"}},
		},
		TechnologyStack: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 2, Keywords: []string{
				"sagemaker", "mlops", "feature store"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"mlflow", "kubeflow", "databricks ml"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"jupyter", "notebooks", "manual deploy"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"excel", "tableau only", "no ml"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"manual", "no tools"}},
		},
		DataInfrastructure: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 3, Keywords: []string{
				"snowflake", "databricks", "lakehouse", "real-time"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"azure", "aws", "warehouse", "etl"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"migration", "hybrid", "modernizing"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"legacy", "silos", "on-premise"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"mainframe", "spreadsheets", "manual"}},
		},
		AIGovernance: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 3, Keywords: []string{
				"caio", "cdo", "board committee", "model risk"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"vp data", "ai policy", "risk framework"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"director", "guidelines", "it governance"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"informal", "no policy", "ad-hoc"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"none", "no oversight", "unmanaged"}},
		},
		Leadership: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 2, Keywords: []string{
				"ceo ai", "board committee", "ai strategy"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"cto ai", "strategic priority"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"vp sponsor", "department initiative"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"it led", "limited awareness"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"no sponsor", "not discussed"}},
		},
		UseCasePortfolio: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 2, Keywords: []string{
				"production ai", "3x roi", "ai product"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"production", "measured roi", "scaling"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"pilot", "early production"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"poc", "proof of concept"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"exploring", "no use cases"}},
		},
		Culture: {
			{Level: 5, Label: "Excellent", MinScore: 80, MaxScore: 100, MinKeywordMatches: 2, Keywords: []string{
				"innovative", "data-driven", "fail-fast"}},
			{Level: 4, Label: "Good", MinScore: 60, MaxScore: 79, MinKeywordMatches: 2, Keywords: []string{
				"experimental", "learning culture"}},
			{Level: 3, Label: "Adequate", MinScore: 40, MaxScore: 59, MinKeywordMatches: 1, Keywords: []string{
				"open to change", "some resistance"}},
			{Level: 2, Label: "Developing", MinScore: 20, MaxScore: 39, MinKeywordMatches: 1, Keywords: []string{
				"bureaucratic", "resistant", "slow"}},
			{Level: 1, Label: "Nascent", MinScore: 0, MaxScore: 19, MinKeywordMatches: 0, Keywords: []string{
				"hostile", "siloed", "no data culture"}},
		},
	}
}
