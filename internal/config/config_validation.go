// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to zero-valued fields after all sources are merged.
const (
	defaultHTTPAddress     = ":3000"
	defaultTokenIssuer     = "vidly"
	defaultTokenDuration   = 24 * time.Hour
	defaultPasswordCost    = 10
	defaultRequestTimeout  = 30 * time.Second
	defaultVersion         = "dev"
	defaultRPS             = 10
	defaultBurst           = 20
	defaultLoginWindow     = time.Minute
	defaultOverdueSchedule = "@every 1h"
	defaultOverdueAfter    = 14 * 24 * time.Hour
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordCost == 0 {
		cfg.App.PasswordCost = defaultPasswordCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}

	if cfg.Limiter.RPS == 0 {
		cfg.Limiter.RPS = defaultRPS
	}
	if cfg.Limiter.Burst == 0 {
		cfg.Limiter.Burst = defaultBurst
	}
	if cfg.Limiter.LoginWindow == 0 {
		cfg.Limiter.LoginWindow = defaultLoginWindow
	}

	if cfg.Workers.OverdueSchedule == "" {
		cfg.Workers.OverdueSchedule = defaultOverdueSchedule
	}
	if cfg.Workers.OverdueAfter == 0 {
		cfg.Workers.OverdueAfter = defaultOverdueAfter
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Limiter.RPS < 0 || cfg.Limiter.Burst < 0 || cfg.Limiter.LoginLimit < 0 {
		return ErrInvalidLimiterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
