package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping between
// variables and fields lives entirely in the `env`/`envPrefix` struct tags
// on [StructuredConfig]; a value that cannot be converted to its field type
// is a wrapped error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
