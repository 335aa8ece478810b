package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping between
// variables and fields lives in the `env` and `envPrefix` tags on
// [StructuredConfig] and the section structs it embeds, so this layer
// stays a thin wrapper around env.Parse.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
