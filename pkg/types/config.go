package types

import (
	"errors"
	"fmt"
	"time"
)

// Config holds cache, logging, output and boundary settings. It is loaded from
// config.yaml and SANMEI_* environment variables.
type Config struct {
	Backend  string        `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataDir  string        `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Format   string        `json:"format" yaml:"format" mapstructure:"format"`
	MinDate  string        `json:"min_date" yaml:"min_date" mapstructure:"min_date"`
	MaxDate  string        `json:"max_date" yaml:"max_date" mapstructure:"max_date"`
}

// Supported backend names. BackendNone disables the reading cache.
const (
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultCacheTTL is the eviction window used when none is configured.
const DefaultCacheTTL = 10 * time.Minute

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrTTLInvalid     = errors.New("cache ttl must be positive")
	ErrFormatUnknown  = errors.New("unknown output format")
	ErrLogLevel       = errors.New("unknown log level")
	ErrRangeInvalid   = errors.New("invalid date range")
)

var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendNone:   true,
}

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
	"":         true,
}

var knownLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%q: %w", c.Backend, ErrBackendUnknown)
	}
	if c.Backend == BackendSQLite && c.CacheTTL <= 0 {
		return ErrTTLInvalid
	}
	if !knownFormats[c.Format] {
		return fmt.Errorf("%q: %w", c.Format, ErrFormatUnknown)
	}
	if !knownLevels[c.LogLevel] {
		return fmt.Errorf("%q: %w", c.LogLevel, ErrLogLevel)
	}
	minD, maxD, err := c.DateRange()
	if err != nil {
		return err
	}
	if !minD.IsZero() && !maxD.IsZero() && maxD.Before(minD) {
		return fmt.Errorf("%s after %s: %w", minD, maxD, ErrRangeInvalid)
	}
	return nil
}

// DateRange parses MinDate and MaxDate. An empty bound is returned as the
// zero Date.
func (c Config) DateRange() (minD, maxD Date, err error) {
	if c.MinDate != "" {
		if minD, err = ParseDate(c.MinDate); err != nil {
			return Date{}, Date{}, fmt.Errorf("min_date: %w", ErrRangeInvalid)
		}
	}
	if c.MaxDate != "" {
		if maxD, err = ParseDate(c.MaxDate); err != nil {
			return Date{}, Date{}, fmt.Errorf("max_date: %w", ErrRangeInvalid)
		}
	}
	return minD, maxD, nil
}

// CheckDate validates d and applies the configured boundary range. It is the
// gate between user input and the engine.
func (c Config) CheckDate(d Date) error {
	if err := d.Validate(); err != nil {
		return err
	}
	minD, maxD, err := c.DateRange()
	if err != nil {
		return err
	}
	if !minD.IsZero() && d.Before(minD) {
		return fmt.Errorf("%s before %s: %w", d, minD, ErrDateOutOfRange)
	}
	if !maxD.IsZero() && maxD.Before(d) {
		return fmt.Errorf("%s after %s: %w", d, maxD, ErrDateOutOfRange)
	}
	return nil
}
