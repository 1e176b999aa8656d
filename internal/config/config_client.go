// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

const defaultClientTimeout = 10 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the vidly server.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued auth token.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Args holds the positional arguments left after flag parsing
	// (the sub-command and its arguments).
	Args []string `env:"-"`
}

// GetClientConfig loads client configuration from the environment and from
// args (usually os.Args[1:]); flags override environment values.
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &ClientConfig{}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "localhost" + defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var address string
	var token string
	var timeout time.Duration

	fs := flag.NewFlagSet("vidly-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&address, "a", "", "Server address")
	fs.StringVar(&token, "token", "", "Auth token")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.PrintDefaults()
		}
		return nil, err
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
			Token:          token,
		},
		Args: fs.Args(),
	}, nil
}
