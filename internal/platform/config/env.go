// Package config loads process configuration for snippetpad commands.
//
// Environment variables are namespaced SNIPPETPAD_<SERVICE>_<SETTING>, for
// example SNIPPETPAD_SNIPPETS_HTTP_ADDR. Tracing settings shared by every
// command use SNIPPETPAD_OTEL_*. Command flags override the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from its env struct tags, applying envDefault values
// for unset variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
