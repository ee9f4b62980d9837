// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// environ replaces the process environment when non-nil, which keeps tests
// independent of the variables set on the machine running them.
//
// Returns a wrapped error if parsing fails (e.g. a duration or integer
// variable cannot be converted to the target type).
func parseEnv(cfg any, environ ...map[string]string) error {
	opts := env.Options{}
	if len(environ) > 0 && environ[0] != nil {
		opts.Environment = environ[0]
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
