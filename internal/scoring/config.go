package scoring

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
)

// RubricCriteria holds the matching criteria for one maturity level.
type RubricCriteria struct {
	Level             int      `json:"level" mapstructure:"level"`
	Label             string   `json:"label" mapstructure:"label"`
	MinScore          float64  `json:"min_score" mapstructure:"min_score"`
	MaxScore          float64  `json:"max_score" mapstructure:"max_score"`
	Keywords          []string `json:"keywords" mapstructure:"keywords"`
	MinKeywordMatches int      `json:"min_keyword_matches" mapstructure:"min_keyword_matches"`
}

// EngineConfig is the complete read-only configuration for one engine
// instance. Loaded once at process start and never mutated afterwards.
type EngineConfig struct {
	// SectorWeights maps sector name to dimension weights summing to 1.0.
	// "default" is the fallback sector.
	SectorWeights map[string]map[Dimension]float64 `json:"sector_weights" mapstructure:"sector_weights"`

	// SectorAverageVR holds calibrated sector average V^R scores for the
	// position factor. Unknown sectors fall back to 50.0.
	SectorAverageVR map[string]float64 `json:"sector_average_vr" mapstructure:"sector_average_vr"`

	// HRBases holds calibrated horizontal readiness baselines per sector.
	HRBases map[string]float64 `json:"hr_bases" mapstructure:"hr_bases"`

	// Mappings is the static source-to-dimension contribution table.
	Mappings map[SignalSource]DimensionMapping `json:"mappings" mapstructure:"mappings"`

	// Rubrics holds per-dimension level criteria, highest level first.
	Rubrics map[Dimension][]RubricCriteria `json:"rubrics" mapstructure:"rubrics"`
}

// DefaultSector is the fallback key in the per-sector tables.
const DefaultSector = "default"

const neutralSectorAverageVR = 50.0

// DefaultEngineConfig returns the calibrated configuration the engine
// ships with. File-based overrides are merged over this by internal/config.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		SectorWeights: map[string]map[Dimension]float64{
			DefaultSector: {
				DataInfrastructure: 0.15,
				AIGovernance:       0.10,
				TechnologyStack:    0.20,
				Talent:             0.20,
				Leadership:         0.10,
				UseCasePortfolio:   0.15,
				Culture:            0.10,
			},
			"technology": {
				DataInfrastructure: 0.15,
				AIGovernance:       0.10,
				TechnologyStack:    0.25,
				Talent:             0.20,
				Leadership:         0.05,
				UseCasePortfolio:   0.15,
				Culture:            0.10,
			},
			"financial_services": {
				DataInfrastructure: 0.15,
				AIGovernance:       0.15,
				TechnologyStack:    0.20,
				Talent:             0.20,
				Leadership:         0.10,
				UseCasePortfolio:   0.15,
				Culture:            0.05,
			},
		},
		SectorAverageVR: map[string]float64{
			"technology":         65.0,
			"financial_services": 55.0,
			"healthcare":         52.0,
			"business_services":  50.0,
			"retail":             48.0,
			"manufacturing":      45.0,
		},
		HRBases: map[string]float64{
			DefaultSector:        70.0,
			"technology":         90.0,
			"financial_services": 75.0,
			"retail":             60.0,
			"manufacturing":      65.0,
		},
		Mappings: defaultMappings(),
		Rubrics:  defaultRubrics(),
	}
}

func defaultMappings() map[SignalSource]DimensionMapping {
	return map[SignalSource]DimensionMapping{
		TechnologyHiring: {
			Source:           TechnologyHiring,
			PrimaryDimension: Talent,
			PrimaryWeight:    0.70,
			SecondaryMappings: map[Dimension]float64{
				TechnologyStack: 0.20,
				Culture:         0.10,
			},
			Reliability: 0.85,
		},
		InnovationActivity: {
			Source:           InnovationActivity,
			PrimaryDimension: TechnologyStack,
			PrimaryWeight:    0.50,
			SecondaryMappings: map[Dimension]float64{
				UseCasePortfolio:   0.30,
				DataInfrastructure: 0.20,
			},
			Reliability: 0.80,
		},
		DigitalPresence: {
			Source:           DigitalPresence,
			PrimaryDimension: DataInfrastructure,
			PrimaryWeight:    0.60,
			SecondaryMappings: map[Dimension]float64{
				TechnologyStack: 0.40,
			},
			Reliability: 0.90,
		},
		LeadershipSignals: {
			Source:           LeadershipSignals,
			PrimaryDimension: Leadership,
			PrimaryWeight:    0.60,
			SecondaryMappings: map[Dimension]float64{
				AIGovernance: 0.25,
				Culture:      0.15,
			},
			Reliability: 0.75,
		},
		SECItem1: {
			Source:           SECItem1,
			PrimaryDimension: UseCasePortfolio,
			PrimaryWeight:    0.70,
			SecondaryMappings: map[Dimension]float64{
				TechnologyStack: 0.30,
			},
			Reliability: 0.95,
		},
		SECItem1A: {
			Source:           SECItem1A,
			PrimaryDimension: AIGovernance,
			PrimaryWeight:    0.80,
			SecondaryMappings: map[Dimension]float64{
				DataInfrastructure: 0.20,
			},
			Reliability: 0.95,
		},
		SECItem7: {
			Source:           SECItem7,
			PrimaryDimension: Leadership,
			PrimaryWeight:    0.50,
			SecondaryMappings: map[Dimension]float64{
				UseCasePortfolio:   0.30,
				DataInfrastructure: 0.20,
			},
			Reliability: 0.90,
		},
		GlassdoorReviews: {
			Source:           GlassdoorReviews,
			PrimaryDimension: Culture,
			PrimaryWeight:    0.80,
			SecondaryMappings: map[Dimension]float64{
				Talent:     0.10,
				Leadership: 0.10,
			},
			Reliability: 0.60,
		},
		BoardComposition: {
			Source:           BoardComposition,
			PrimaryDimension: AIGovernance,
			PrimaryWeight:    0.70,
			SecondaryMappings: map[Dimension]float64{
				Leadership: 0.30,
			},
			Reliability: 0.90,
		},
	}
}

// Validate checks the configuration invariants: sector weights sum to
// 1.0, all weights and reliabilities are in range, the default sector
// exists, and every rubric dimension has its five ordered levels.
func (c *EngineConfig) Validate() error {
	if _, ok := c.SectorWeights[DefaultSector]; !ok {
		return apperrors.NewConfigurationError("sector weight table missing default sector", nil)
	}
	if _, ok := c.HRBases[DefaultSector]; !ok {
		return apperrors.NewConfigurationError("hr base table missing default sector", nil)
	}
	for sector, weights := range c.SectorWeights {
		total := 0.0
		for dim, w := range weights {
			if w < 0 || w > 1 {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("sector %s dimension %s weight %v out of [0,1]", sector, dim, w), nil)
			}
			total += w
		}
		if math.Abs(total-1.0) > 1e-9 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("sector %s weights sum to %v, want 1.0", sector, total), nil)
		}
		for _, dim := range AllDimensions {
			if _, ok := weights[dim]; !ok {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("sector %s missing weight for dimension %s", sector, dim), nil)
			}
		}
	}

	for source, m := range c.Mappings {
		if m.PrimaryWeight < 0 || m.PrimaryWeight > 1 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("source %s primary weight %v out of [0,1]", source, m.PrimaryWeight), nil)
		}
		if m.Reliability < 0 || m.Reliability > 1 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("source %s reliability %v out of [0,1]", source, m.Reliability), nil)
		}
		for dim, w := range m.SecondaryMappings {
			if w < 0 || w > 1 {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("source %s secondary %s weight %v out of [0,1]", source, dim, w), nil)
			}
		}
	}

	for dim, levels := range c.Rubrics {
		if len(levels) != 5 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("rubric for %s has %d levels, want 5", dim, len(levels)), nil)
		}
		for i, crit := range levels {
			want := 5 - i
			if crit.Level != want {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("rubric for %s level at index %d is %d, want %d (highest first)", dim, i, crit.Level, want), nil)
			}
			if crit.MinScore > crit.MaxScore {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("rubric for %s level %d has min %v > max %v", dim, crit.Level, crit.MinScore, crit.MaxScore), nil)
			}
		}
	}

	return nil
}

// SectorWeightsFor resolves a sector name, falling back to the default
// table. Sector names are case-insensitive.
func (c *EngineConfig) SectorWeightsFor(sector string) map[Dimension]float64 {
	if w, ok := c.SectorWeights[strings.ToLower(sector)]; ok {
		return w
	}
	return c.SectorWeights[DefaultSector]
}

// SectorAverageFor resolves a sector average V^R, falling back to 50.0.
func (c *EngineConfig) SectorAverageFor(sector string) float64 {
	if avg, ok := c.SectorAverageVR[strings.ToLower(sector)]; ok {
		return avg
	}
	return neutralSectorAverageVR
}

// HRBaseFor resolves the calibrated H^R baseline for a sector.
func (c *EngineConfig) HRBaseFor(sector string) float64 {
	if base, ok := c.HRBases[strings.ToLower(sector)]; ok {
		return base
	}
	return c.HRBases[DefaultSector]
}
