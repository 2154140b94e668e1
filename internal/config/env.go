// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the `env`/`envPrefix` tags of [StructuredConfig].
// The session token is trimmed so a trailing newline from a secrets file does
// not turn into part of the credential.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Session.Token = strings.TrimSpace(cfg.Session.Token)
	return nil
}
