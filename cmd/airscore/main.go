package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/org-air-engine/internal/config"
	"github.com/ZanzyTHEbar/org-air-engine/internal/monitoring"
	"github.com/ZanzyTHEbar/org-air-engine/internal/scoring"
	"github.com/ZanzyTHEbar/org-air-engine/internal/types"
)

var (
	cfgPath    string
	inputPath  string
	outputPath string
	coverage   bool
)

// assessmentRecord is the persisted form of one scoring run. The
// assessment identity and timestamp live here, at the I/O boundary, so
// the engine itself stays reproducible.
type assessmentRecord struct {
	AssessmentID string `json:"assessment_id"`
	CalculatedAt string `json:"calculated_at"`
	scoring.ReadinessResult
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "airscore",
		Short: "Score organizational AI readiness from collected evidence",
		Long: `airscore runs the Org-AI-R scoring engine over an assessment input
document (evidence records, job postings, reviews, company reference
data) and writes the readiness result as JSON.`,
		RunE:          runScore,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "optional engine config file (JSON/YAML)")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "assessment input JSON file, or - for stdin")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "result JSON file, or - for stdout")
	rootCmd.Flags().BoolVar(&coverage, "coverage", false, "include the per-dimension evidence coverage report")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := monitoring.NewLogger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	engine, err := scoring.NewEngine(cfg, logger)
	if err != nil {
		return err
	}

	input, err := readInput(inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := engine.Score(input)
	if err != nil {
		return err
	}
	logger.ScoringLogger(
		result.CompanyID, result.Sector,
		result.VerticalReadiness, result.HorizontalReadiness,
		result.SynergyScore, result.OrgAIRScore, result.OverallConfidence,
		time.Since(start),
	)

	record := struct {
		assessmentRecord
		Coverage map[scoring.Dimension]scoring.DimensionCoverage `json:"coverage,omitempty"`
	}{
		assessmentRecord: assessmentRecord{
			AssessmentID:    uuid.NewString(),
			CalculatedAt:    time.Now().UTC().Format(time.RFC3339),
			ReadinessResult: result,
		},
	}

	if coverage {
		evidence := make([]scoring.EvidenceScore, 0, len(input.Evidence))
		for _, rec := range input.Evidence {
			ev, err := scoring.NewEvidenceScore(scoring.SignalSource(rec.Source), rec.RawScore, rec.Confidence, rec.EvidenceCount)
			if err != nil {
				return err
			}
			evidence = append(evidence, ev)
		}
		record.Coverage = engine.Mapper().CoverageReport(evidence)
	}

	return writeOutput(outputPath, record)
}

func readInput(path string) (types.AssessmentInput, error) {
	var input types.AssessmentInput

	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return input, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("failed to decode assessment input: %w", err)
	}
	return input, nil
}

func writeOutput(path string, record any) error {
	var writer io.Writer = os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}
