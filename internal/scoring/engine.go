package scoring

import (
	"fmt"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
	"github.com/ZanzyTHEbar/org-air-engine/internal/monitoring"
	"github.com/ZanzyTHEbar/org-air-engine/internal/types"
)

// Org-AI-R composition constants.
const (
	orgAIRAlpha = 0.6  // V^R share of base readiness
	orgAIRBeta  = 0.12 // synergy share of the final score
	confidenceZ = 1.96 // 95% interval
)

// Engine is the single orchestration point for one scoring run. It is
// pure computation: no I/O, no clock, no randomness, and every
// collaborator is stateless over read-only configuration, so one engine
// can score many companies concurrently.
type Engine struct {
	cfg        *EngineConfig
	mapper     *EvidenceMapper
	rubric     *RubricScorer
	position   *PositionFactorCalculator
	talent     *TalentConcentrationCalculator
	vr         *VRCalculator
	hr         *HRCalculator
	synergy    *SynergyCalculator
	confidence *ConfidenceCalculator
}

// NewEngine validates the configuration and wires the calculators.
func NewEngine(cfg *EngineConfig, logger *monitoring.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = monitoring.NewDiscardLogger()
	}

	return &Engine{
		cfg:        cfg,
		mapper:     NewEvidenceMapper(cfg.Mappings, logger),
		rubric:     NewRubricScorer(cfg.Rubrics),
		position:   NewPositionFactorCalculator(cfg),
		talent:     NewTalentConcentrationCalculator(logger),
		vr:         NewVRCalculator(cfg),
		hr:         NewHRCalculator(),
		synergy:    NewSynergyCalculator(),
		confidence: NewConfidenceCalculator(),
	}, nil
}

// Mapper exposes the evidence mapper for coverage reporting.
func (e *Engine) Mapper() *EvidenceMapper { return e.mapper }

// Rubric exposes the rubric scorer for upstream text classification.
func (e *Engine) Rubric() *RubricScorer { return e.rubric }

// Score runs the full pipeline for one company: evidence mapping, V^R,
// position factor, talent concentration, H^R, synergy, confidence, and
// the composite Org-AI-R score with its 95% interval. Two calls with the
// same input and configuration produce bit-identical results.
func (e *Engine) Score(input types.AssessmentInput) (ReadinessResult, error) {
	evidence := make([]EvidenceScore, 0, len(input.Evidence))
	for _, rec := range input.Evidence {
		ev, err := NewEvidenceScore(SignalSource(rec.Source), rec.RawScore, rec.Confidence, rec.EvidenceCount)
		if err != nil {
			return ReadinessResult{}, err
		}
		ev.Metadata = rec.Metadata
		evidence = append(evidence, ev)
	}

	mcapPercentile, err := resolveMarketCapPercentile(input)
	if err != nil {
		return ReadinessResult{}, err
	}

	dimensions := e.mapper.MapEvidence(evidence)

	vr := e.vr.Calculate(dimensions, input.Sector)
	pf := e.position.Calculate(vr, input.Sector, mcapPercentile)

	jobs := e.talent.AnalyzeJobPostings(input.JobPostings)
	reviews := e.talent.AnalyzeReviews(input.Reviews)
	tc := e.talent.CalculateTC(jobs, reviews)

	hrBase := e.cfg.HRBaseFor(input.Sector)
	if input.HRBase != nil {
		hrBase = *input.HRBase
	}
	hr := e.hr.Calculate(hrBase*tc.RiskAdjustment, pf)

	alignment, timing := 1.0, 1.0
	if input.Alignment != nil {
		alignment = *input.Alignment
	}
	if input.Timing != nil {
		timing = *input.Timing
	}
	synergy := e.synergy.Calculate(vr, hr, alignment, timing)

	scores := make([]float64, 0, len(AllDimensions))
	confidences := make([]float64, 0, len(AllDimensions))
	for _, dim := range AllDimensions {
		scores = append(scores, dimensions[dim].Score)
		confidences = append(confidences, dimensions[dim].Confidence)
	}
	conf := e.confidence.Calculate(scores, confidences)

	baseReadiness := orgAIRAlpha*vr + (1.0-orgAIRAlpha)*hr
	final := round2((1.0-orgAIRBeta)*baseReadiness + orgAIRBeta*synergy)

	margin := confidenceZ * conf.SEM

	return ReadinessResult{
		CompanyID:           input.CompanyID,
		CompanyName:         input.CompanyName,
		Ticker:              input.Ticker,
		Sector:              input.Sector,
		DimensionScores:     dimensions,
		VerticalReadiness:   vr,
		HorizontalReadiness: hr,
		SynergyScore:        synergy,
		OrgAIRScore:         final,
		OverallConfidence:   conf.Overall,
		ConfidenceLow:       round2(clamp(final-margin, 0, 100)),
		ConfidenceHigh:      round2(clamp(final+margin, 0, 100)),
		StandardError:       conf.SEM,
		Reliability:         conf.Reliability,
		PositionFactor:      pf,
		TalentConcentration: tc.TC,
		TalentRiskAdj:       tc.RiskAdjustment,
	}, nil
}

func resolveMarketCapPercentile(input types.AssessmentInput) (float64, error) {
	if input.MarketCapPercentile != nil {
		p := *input.MarketCapPercentile
		if p < 0 || p > 1 {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("market_cap_percentile must be in [0,1], got %v", p))
		}
		return p, nil
	}
	if input.MarketCapUSD != nil {
		if *input.MarketCapUSD < 0 {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("market_cap_usd must be >= 0, got %v", *input.MarketCapUSD))
		}
		return MarketCapPercentile(*input.MarketCapUSD), nil
	}
	// Neither supplied: neutral mid-market position.
	return 0.5, nil
}
