package scoring

import (
	"fmt"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
)

// Dimension is one of the seven fixed maturity categories.
type Dimension string

const (
	DataInfrastructure Dimension = "data_infrastructure"
	AIGovernance       Dimension = "ai_governance"
	TechnologyStack    Dimension = "technology_stack"
	Talent             Dimension = "talent"
	Leadership         Dimension = "leadership"
	UseCasePortfolio   Dimension = "use_case_portfolio"
	Culture            Dimension = "culture"
)

// AllDimensions lists the seven dimensions in canonical order. Every
// per-dimension loop in the engine iterates in this order so that float
// accumulation is reproducible.
var AllDimensions = []Dimension{
	DataInfrastructure,
	AIGovernance,
	TechnologyStack,
	Talent,
	Leadership,
	UseCasePortfolio,
	Culture,
}

// SignalSource is an evidence source category.
type SignalSource string

const (
	TechnologyHiring   SignalSource = "technology_hiring"
	InnovationActivity SignalSource = "innovation_activity"
	DigitalPresence    SignalSource = "digital_presence"
	LeadershipSignals  SignalSource = "leadership_signals"
	SECItem1           SignalSource = "sec_item_1"
	SECItem1A          SignalSource = "sec_item_1a"
	SECItem7           SignalSource = "sec_item_7"
	GlassdoorReviews   SignalSource = "glassdoor_reviews"
	BoardComposition   SignalSource = "board_composition"
)

// AllSignalSources lists the known sources in canonical fold order.
var AllSignalSources = []SignalSource{
	TechnologyHiring,
	InnovationActivity,
	DigitalPresence,
	LeadershipSignals,
	SECItem1,
	SECItem1A,
	SECItem7,
	GlassdoorReviews,
	BoardComposition,
}

// EvidenceScore is a single scored observation from one signal source.
// Construct through NewEvidenceScore so range violations fail fast.
type EvidenceScore struct {
	Source        SignalSource      `json:"source"`
	RawScore      float64           `json:"raw_score"`
	Confidence    float64           `json:"confidence"`
	EvidenceCount int               `json:"evidence_count"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// NewEvidenceScore validates ranges at construction time. Invalid inputs
// are rejected, never silently clamped.
func NewEvidenceScore(source SignalSource, rawScore, confidence float64, evidenceCount int) (EvidenceScore, error) {
	if rawScore < 0 || rawScore > 100 {
		return EvidenceScore{}, apperrors.NewValidationError(
			fmt.Sprintf("raw_score must be in [0,100], got %v for source %s", rawScore, source))
	}
	if confidence < 0 || confidence > 1 {
		return EvidenceScore{}, apperrors.NewValidationError(
			fmt.Sprintf("confidence must be in [0,1], got %v for source %s", confidence, source))
	}
	if evidenceCount < 0 {
		return EvidenceScore{}, apperrors.NewValidationError(
			fmt.Sprintf("evidence_count must be >= 0, got %d for source %s", evidenceCount, source))
	}
	return EvidenceScore{
		Source:        source,
		RawScore:      rawScore,
		Confidence:    confidence,
		EvidenceCount: evidenceCount,
	}, nil
}

// DimensionMapping routes one signal source into dimensions with fixed
// contribution weights. Static configuration, never computed at runtime.
type DimensionMapping struct {
	Source            SignalSource          `json:"source"`
	PrimaryDimension  Dimension             `json:"primary_dimension"`
	PrimaryWeight     float64               `json:"primary_weight"`
	SecondaryMappings map[Dimension]float64 `json:"secondary_mappings,omitempty"`
	Reliability       float64               `json:"reliability"`
}

// DimensionScore is the aggregated score for one dimension. Defaulted
// marks the neutral no-evidence outcome so downstream code cannot mistake
// it for a computed score.
type DimensionScore struct {
	Dimension           Dimension      `json:"dimension"`
	Score               float64        `json:"score"`
	ContributingSources []SignalSource `json:"contributing_sources"`
	TotalWeight         float64        `json:"total_weight"`
	Confidence          float64        `json:"confidence"`
	Defaulted           bool           `json:"defaulted"`
}

// ReadinessResult is the final output record for one scoring run.
// Immutable once produced; all percentage-like fields carry two decimals.
type ReadinessResult struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name,omitempty"`
	Ticker      string `json:"ticker,omitempty"`
	Sector      string `json:"sector"`

	DimensionScores map[Dimension]DimensionScore `json:"dimension_scores"`

	VerticalReadiness   float64 `json:"vertical_readiness"`
	HorizontalReadiness float64 `json:"horizontal_readiness"`
	SynergyScore        float64 `json:"synergy_score"`
	OrgAIRScore         float64 `json:"org_air_score"`

	OverallConfidence   float64 `json:"overall_confidence"`
	ConfidenceLow       float64 `json:"confidence_interval_low"`
	ConfidenceHigh      float64 `json:"confidence_interval_high"`
	StandardError       float64 `json:"standard_error"`
	Reliability         float64 `json:"reliability"`
	PositionFactor      float64 `json:"position_factor"`
	TalentConcentration float64 `json:"talent_concentration"`
	TalentRiskAdj       float64 `json:"talent_risk_adjustment"`
}
