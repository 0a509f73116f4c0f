package config

import (
	"fmt"

	"github.com/spf13/viper"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
	"github.com/ZanzyTHEbar/org-air-engine/internal/scoring"
)

// Load returns the engine configuration: the compiled-in calibrated
// defaults, optionally overridden by a JSON/YAML/TOML config file.
// The result is validated and must be treated as read-only afterwards.
func Load(path string) (*scoring.EngineConfig, error) {
	cfg := scoring.DefaultEngineConfig()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("failed to read config file %s", path), err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("failed to decode config file %s", path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
