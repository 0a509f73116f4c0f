package monitoring

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger provides enhanced structured logging with context
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add timestamp in RFC3339 format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewDiscardLogger creates a logger that drops everything, for tests
func NewDiscardLogger() *Logger {
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// ScoringLogger logs the outcome of a full readiness scoring run
func (l *Logger) ScoringLogger(companyID, sector string, vr, hr, synergy, score, confidence float64, duration time.Duration) {
	l.Info("Scoring Completed",
		"company_id", companyID,
		"sector", sector,
		"vertical_readiness", vr,
		"horizontal_readiness", hr,
		"synergy", synergy,
		"org_air_score", score,
		"confidence", confidence,
		"duration_ms", duration.Milliseconds(),
	)
}

// SkippedSourceLogger logs an evidence record whose source has no mapping
func (l *Logger) SkippedSourceLogger(source string) {
	l.Warn("Evidence Skipped",
		"source", source,
		"reason", "no dimension mapping",
	)
}

// TalentLogger logs a talent concentration calculation with its components
func (l *Logger) TalentLogger(tc, leadershipRatio, teamSizeFactor, skillConcentration, individualFactor float64) {
	l.Info("Talent Concentration Calculated",
		"tc_final", tc,
		"leadership_ratio", leadershipRatio,
		"team_size_factor", teamSizeFactor,
		"skill_concentration", skillConcentration,
		"individual_factor", individualFactor,
	)
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	l.Logger = slog.New(handler)
}
