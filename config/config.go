// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package config provides centralized configuration for the light client
// core: which digest implementation to run, how strictly to enforce the
// approvals/validators length tie-break, and how to log.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the complete configuration for a light client process.
type Config struct {
	Digest     DigestConfig     `json:"digest"`
	Validation ValidationConfig `json:"validation"`
	Logging    LoggingConfig    `json:"logging"`
}

// DigestConfig selects the hashing capability (spec's "capability injection
// for digest").
type DigestConfig struct {
	// Implementation is "sha256" (stdlib, matches the live chain) or
	// "fast-sha256" (assembly-optimised, byte-identical output).
	Implementation string `json:"implementation"`
}

// ValidationConfig tunes the block acceptance rules beyond the six
// mandatory checks.
type ValidationConfig struct {
	// StrictLengths rejects a candidate whose approvals_after_next length
	// differs from the validator set length, instead of truncating to the
	// shorter of the two.
	StrictLengths bool `json:"strict_lengths"`
	// CrossCheckBlockHash additionally verifies an outcome proof's
	// BlockHash against the head block's current_block_hash before
	// trusting the outcome root it proves inclusion under.
	CrossCheckBlockHash bool `json:"cross_check_block_hash"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level     string `json:"level"`
	Format    string `json:"format"`
	Output    string `json:"output"`
	AddSource bool   `json:"add_source"`
}

// DefaultConfig returns a configuration with sensible defaults: the chain's
// own digest, strict lengths off (matching the chain's documented
// zip-to-shorter behaviour), and the block-hash cross-check on.
func DefaultConfig() *Config {
	return &Config{
		Digest: DigestConfig{
			Implementation: "sha256",
		},
		Validation: ValidationConfig{
			StrictLengths:       false,
			CrossCheckBlockHash: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// LoadConfig builds a Config starting from DefaultConfig, applying an
// optional JSON file and then environment variable overrides, in that
// order, and validates the result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	if filename != "" {
		if err := loadFromFile(cfg, filename); err != nil {
			return nil, err
		}
	}
	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("LITECLIENT_DIGEST"); v != "" {
		cfg.Digest.Implementation = v
	}
	if v := os.Getenv("LITECLIENT_STRICT_LENGTHS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LITECLIENT_STRICT_LENGTHS: %w", err)
		}
		cfg.Validation.StrictLengths = b
	}
	if v := os.Getenv("LITECLIENT_CROSS_CHECK_BLOCK_HASH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LITECLIENT_CROSS_CHECK_BLOCK_HASH: %w", err)
		}
		cfg.Validation.CrossCheckBlockHash = b
	}
	if v := os.Getenv("LITECLIENT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LITECLIENT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks cfg for internally-inconsistent or unsupported values.
func (c *Config) Validate() error {
	switch c.Digest.Implementation {
	case "sha256", "fast-sha256":
	default:
		return fmt.Errorf("unknown digest implementation %q", c.Digest.Implementation)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	return nil
}
