// Package application wires the verification engine to its configuration
// surface: YAML parsing, struct-tag validation, and engine construction
// from validated settings.
package application

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-overtime/internal/engine"
	"github.com/ahrav/go-overtime/internal/ports"
)

// Default timing values applied before user configuration is overlaid.
const (
	// DefaultPollingPeriodMs is the default interval between retries.
	DefaultPollingPeriodMs = 10
	// DefaultDurationMs is the default total time budget.
	DefaultDurationMs = 1000
)

// VerifyConfig defines the timing parameters for a timed verification
// as they appear in configuration files.
// All fields are validated during parsing.
type VerifyConfig struct {
	// PollingPeriodMs is the wait in milliseconds between unsuccessful,
	// recoverable retries of the delegate check.
	PollingPeriodMs int `yaml:"polling_period_ms" validate:"required,min=1,max=60000"`

	// DurationMs is the total time budget in milliseconds for the
	// polling loop.
	DurationMs int `yaml:"duration_ms" validate:"required,min=1,max=600000"`

	// ReturnOnSuccess selects early-return semantics when true, or
	// must-hold-for-full-duration semantics when false.
	ReturnOnSuccess bool `yaml:"return_on_success"`
}

// DefaultVerifyConfig returns a VerifyConfig with sensible default values
// suitable for most use cases.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		PollingPeriodMs: DefaultPollingPeriodMs,
		DurationMs:      DefaultDurationMs,
		ReturnOnSuccess: true,
	}
}

// ParseVerifyConfig decodes YAML configuration, overlaying it on the
// defaults, and validates the result.
func ParseVerifyConfig(data []byte) (VerifyConfig, error) {
	cfg := DefaultVerifyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return VerifyConfig{}, fmt.Errorf("parse verify config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return VerifyConfig{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// PollingPeriod returns the configured polling interval as a duration.
func (c VerifyConfig) PollingPeriod() time.Duration {
	return time.Duration(c.PollingPeriodMs) * time.Millisecond
}

// Duration returns the configured total time budget as a duration.
func (c VerifyConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// NewEngineFromConfig constructs a verification engine for the given check
// from validated configuration.
func NewEngineFromConfig(cfg VerifyConfig, check ports.Check) (*engine.OverTime, error) {
	return engine.NewOverTime(engine.Config{
		PollingPeriod:   cfg.PollingPeriod(),
		Duration:        cfg.Duration(),
		ReturnOnSuccess: cfg.ReturnOnSuccess,
	}, check)
}
