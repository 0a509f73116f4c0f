package scoring

import "math"

// Vertical readiness constants.
const (
	vrDimensionFloor = 30.0
	vrCVCoefficient  = 0.25
)

// VRCalculator aggregates the seven dimension scores into Vertical
// Readiness using the sector weight table and a consistency penalty.
type VRCalculator struct {
	cfg *EngineConfig
}

// NewVRCalculator creates a calculator over the sector weight tables in cfg.
func NewVRCalculator(cfg *EngineConfig) *VRCalculator {
	return &VRCalculator{cfg: cfg}
}

// Calculate computes V^R for a sector. Each dimension score is floored at
// 30.0 before weighting: the composite never treats a company as below
// "Developing" maturity even when the raw dimension score is lower or
// defaulted. The weighted base is then discounted by a coefficient-of-
// variation penalty over the floored scores, so an uneven profile scores
// below an even one with the same average.
func (v *VRCalculator) Calculate(dimensionScores map[Dimension]DimensionScore, sector string) float64 {
	weights := v.cfg.SectorWeightsFor(sector)

	vrBase := 0.0
	floored := make([]float64, 0, len(AllDimensions))
	for _, dim := range AllDimensions {
		score := neutralDimensionScore
		if ds, ok := dimensionScores[dim]; ok {
			score = ds.Score
		}
		score = math.Max(vrDimensionFloor, score)
		vrBase += score * weights[dim]
		floored = append(floored, score)
	}

	m := mean(floored)
	cv := 1.0
	if m > 0 {
		cv = popStdDev(floored) / m
	}
	cvPenalty := 1.0 - vrCVCoefficient*cv

	return round2(clamp(vrBase*cvPenalty, 0, 100))
}

// Horizontal readiness constants.
const hrDefaultAlpha = 0.15

// HRCalculator adjusts an externally calibrated baseline by market position.
type HRCalculator struct {
	alpha float64
}

// NewHRCalculator creates a calculator with the default position alpha.
func NewHRCalculator() *HRCalculator {
	return &HRCalculator{alpha: hrDefaultAlpha}
}

// Calculate computes H^R = hrBase * (1 + alpha * positionFactor), clamped
// to [0, 100]. Any talent risk adjustment is applied to hrBase by the
// caller before this call.
func (h *HRCalculator) Calculate(hrBase, positionFactor float64) float64 {
	hr := hrBase * (1.0 + h.alpha*positionFactor)
	return round2(clamp(hr, 0, 100))
}

// SynergyCalculator rewards companies strong in both V^R and H^R.
type SynergyCalculator struct{}

// NewSynergyCalculator creates a calculator.
func NewSynergyCalculator() *SynergyCalculator {
	return &SynergyCalculator{}
}

// Calculate computes (vr*hr/100) * alignment * timing, clamped to [0, 100].
// Alignment and timing are 1.0 when not separately assessed.
func (s *SynergyCalculator) Calculate(vr, hr, alignment, timing float64) float64 {
	synergy := (vr * hr / 100.0) * alignment * timing
	return round2(clamp(synergy, 0, 100))
}

// Confidence constants.
const confidenceInterItemCorrelation = 0.7

// ConfidenceResult carries the measurement diagnostics alongside the
// overall confidence.
type ConfidenceResult struct {
	Overall     float64 `json:"overall_confidence"`
	SEM         float64 `json:"standard_error"`
	Reliability float64 `json:"reliability"`
}

// ConfidenceCalculator derives a Standard-Error-of-Measurement penalty
// from the spread of the dimension scores, using the Spearman-Brown
// reliability formula with an assumed inter-item correlation.
type ConfidenceCalculator struct {
	interItemCorrelation float64
}

// NewConfidenceCalculator creates a calculator with the default
// inter-item correlation.
func NewConfidenceCalculator() *ConfidenceCalculator {
	return &ConfidenceCalculator{interItemCorrelation: confidenceInterItemCorrelation}
}

// Calculate computes overall confidence from the dimension scores and
// their per-dimension confidences.
//
// With fewer than two scores the reliability is 1.0 and the SEM is 0:
// no penalty is derivable from a single point. The SEM enters the
// confidence unnormalized; historical scores depend on this exact form.
func (c *ConfidenceCalculator) Calculate(scores, confidences []float64) ConfidenceResult {
	rho := 1.0
	sem := 0.0
	if len(scores) >= 2 {
		n := float64(len(scores))
		r := c.interItemCorrelation
		rho = n * r / (1.0 + (n-1.0)*r)
		sem = sampleStdDev(scores) * math.Sqrt(1.0-rho)
	}

	overall := clamp(mean(confidences)*(1.0-sem), 0, 1)

	return ConfidenceResult{
		Overall:     round2(overall),
		SEM:         roundTo(sem, 4),
		Reliability: roundTo(rho, 4),
	}
}
