package scoring

import (
	"math"
	"sort"

	"github.com/ZanzyTHEbar/org-air-engine/internal/monitoring"
)

// Neutral outcome for a dimension with no mapped evidence.
const (
	neutralDimensionScore = 50.0
)

// EvidenceMapper converts per-source evidence records into the seven
// canonical dimension scores using the static contribution table.
type EvidenceMapper struct {
	mappings map[SignalSource]DimensionMapping
	logger   *monitoring.Logger
}

// NewEvidenceMapper creates a mapper over the given contribution table.
func NewEvidenceMapper(mappings map[SignalSource]DimensionMapping, logger *monitoring.Logger) *EvidenceMapper {
	if logger == nil {
		logger = monitoring.NewDiscardLogger()
	}
	return &EvidenceMapper{mappings: mappings, logger: logger}
}

// MapEvidence aggregates evidence into one DimensionScore per dimension.
//
// Effective weight per contribution is weight * confidence * reliability;
// each dimension's score is the effective-weight-weighted average of the
// raw scores routed to it. Evidence from unmapped sources is skipped with
// a log entry. Dimensions with no evidence get the neutral default
// (score 50.0, confidence 0.0, Defaulted=true).
//
// The result is independent of the order of the evidence list: records
// are folded in a canonical source order, and in a deterministic content
// order within one source, so even float accumulation order cannot vary.
func (m *EvidenceMapper) MapEvidence(evidence []EvidenceScore) map[Dimension]DimensionScore {
	sums := make(map[Dimension]float64, len(AllDimensions))
	weights := make(map[Dimension]float64, len(AllDimensions))
	sources := make(map[Dimension][]SignalSource, len(AllDimensions))

	seen := make(map[Dimension]map[SignalSource]bool)
	recordSource := func(dim Dimension, src SignalSource) {
		if seen[dim] == nil {
			seen[dim] = make(map[SignalSource]bool)
		}
		if !seen[dim][src] {
			seen[dim][src] = true
			sources[dim] = append(sources[dim], src)
		}
	}

	for _, ev := range canonicalOrder(evidence) {
		mapping, ok := m.mappings[ev.Source]
		if !ok {
			m.logger.SkippedSourceLogger(string(ev.Source))
			continue
		}

		w := mapping.PrimaryWeight * ev.Confidence * mapping.Reliability
		sums[mapping.PrimaryDimension] += ev.RawScore * w
		weights[mapping.PrimaryDimension] += w
		recordSource(mapping.PrimaryDimension, ev.Source)

		for _, dim := range sortedSecondaryDimensions(mapping.SecondaryMappings) {
			sw := mapping.SecondaryMappings[dim] * ev.Confidence * mapping.Reliability
			sums[dim] += ev.RawScore * sw
			weights[dim] += sw
			recordSource(dim, ev.Source)
		}
	}

	results := make(map[Dimension]DimensionScore, len(AllDimensions))
	for _, dim := range AllDimensions {
		totalW := weights[dim]
		if totalW > 0 {
			results[dim] = DimensionScore{
				Dimension:           dim,
				Score:               round2(sums[dim] / totalW),
				ContributingSources: sources[dim],
				TotalWeight:         round2(math.Min(1.0, totalW)),
				Confidence:          round2(math.Min(1.0, totalW)),
			}
		} else {
			results[dim] = DimensionScore{
				Dimension:           dim,
				Score:               neutralDimensionScore,
				ContributingSources: []SignalSource{},
				TotalWeight:         0.0,
				Confidence:          0.0,
				Defaulted:           true,
			}
		}
	}

	return results
}

// DimensionCoverage summarizes evidence presence for one dimension.
type DimensionCoverage struct {
	HasEvidence bool    `json:"has_evidence"`
	SourceCount int     `json:"source_count"`
	TotalWeight float64 `json:"total_weight"`
	Confidence  float64 `json:"confidence"`
}

// CoverageReport shows which dimensions have evidence, for spotting data
// gaps before a scoring run is trusted.
func (m *EvidenceMapper) CoverageReport(evidence []EvidenceScore) map[Dimension]DimensionCoverage {
	mapped := m.MapEvidence(evidence)
	report := make(map[Dimension]DimensionCoverage, len(mapped))
	for dim, ds := range mapped {
		report[dim] = DimensionCoverage{
			HasEvidence: len(ds.ContributingSources) > 0,
			SourceCount: len(ds.ContributingSources),
			TotalWeight: ds.TotalWeight,
			Confidence:  ds.Confidence,
		}
	}
	return report
}

// canonicalOrder returns the evidence sorted by canonical source order,
// then by content within one source. Input order never leaks into the fold.
func canonicalOrder(evidence []EvidenceScore) []EvidenceScore {
	rank := make(map[SignalSource]int, len(AllSignalSources))
	for i, s := range AllSignalSources {
		rank[s] = i
	}
	sourceRank := func(s SignalSource) int {
		if r, ok := rank[s]; ok {
			return r
		}
		return len(AllSignalSources)
	}

	sorted := append([]EvidenceScore(nil), evidence...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ra, rb := sourceRank(a.Source), sourceRank(b.Source); ra != rb {
			return ra < rb
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.RawScore != b.RawScore {
			return a.RawScore < b.RawScore
		}
		if a.Confidence != b.Confidence {
			return a.Confidence < b.Confidence
		}
		return a.EvidenceCount < b.EvidenceCount
	})
	return sorted
}

func sortedSecondaryDimensions(m map[Dimension]float64) []Dimension {
	dims := make([]Dimension, 0, len(m))
	for dim := range m {
		dims = append(dims, dim)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}
