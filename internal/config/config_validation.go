// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged and defaulted [StructuredConfig] can start
// the synchronizer. Each failure wraps one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: address must include scheme and host", ErrInvalidAdapterConfigs)
		}
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
