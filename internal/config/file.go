// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		PasswordCost  int      `json:"password_cost" yaml:"password_cost"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Limiter struct {
		Enabled       bool     `json:"enabled" yaml:"enabled"`
		RPS           float64  `json:"rps" yaml:"rps"`
		Burst         int      `json:"burst" yaml:"burst"`
		LoginLimit    int      `json:"login_limit" yaml:"login_limit"`
		LoginWindow   Duration `json:"login_window" yaml:"login_window"`
		RedisAddress  string   `json:"redis_address" yaml:"redis_address"`
		RedisPassword string   `json:"redis_password" yaml:"redis_password"`
	} `json:"limiter,omitempty" yaml:"limiter,omitempty"`

	Workers struct {
		OverdueSchedule string   `json:"overdue_schedule" yaml:"overdue_schedule"`
		OverdueAfter    Duration `json:"overdue_after" yaml:"overdue_after"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON or YAML config file. The decoder is selected by the
// file extension: .yaml and .yml use YAML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			PasswordCost:  f.App.PasswordCost,
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Limiter: Limiter{
			Enabled:       f.Limiter.Enabled,
			RPS:           f.Limiter.RPS,
			Burst:         f.Limiter.Burst,
			LoginLimit:    f.Limiter.LoginLimit,
			LoginWindow:   time.Duration(f.Limiter.LoginWindow),
			RedisAddress:  f.Limiter.RedisAddress,
			RedisPassword: f.Limiter.RedisPassword,
		},
		Workers: Workers{
			OverdueSchedule: f.Workers.OverdueSchedule,
			OverdueAfter:    time.Duration(f.Workers.OverdueAfter),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(raw); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var nanos int64
	if err := node.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}
