package config

import (
	"fmt"

	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

// ValidateConfig checks field constraints on a configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return gradediterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	// min and max are reserved; only their order is checked.
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return gradediterrors.NewValidationError("min", fmt.Sprintf("min %g exceeds max %g", *cfg.Min, *cfg.Max), nil)
	}

	return nil
}
