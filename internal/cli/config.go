package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/sanmei/internal/logging"
	"github.com/mesh-intelligence/sanmei/internal/paths"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Config keys in config.yaml.
const (
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyCacheTTL = "cache_ttl"
	cfgKeyLogLevel = "log_level"
	cfgKeyFormat   = "format"
	cfgKeyMinDate  = "date_range.min"
	cfgKeyMaxDate  = "date_range.max"
)

// envKeys binds SANMEI_* variables. data_dir is resolved by paths so that
// config.yaml keeps precedence over SANMEI_DATA_DIR.
var envKeys = map[string]string{
	cfgKeyBackend:  "SANMEI_BACKEND",
	cfgKeyCacheTTL: "SANMEI_CACHE_TTL",
	cfgKeyLogLevel: "SANMEI_LOG_LEVEL",
	cfgKeyFormat:   "SANMEI_FORMAT",
	cfgKeyMinDate:  "SANMEI_MIN_DATE",
	cfgKeyMaxDate:  "SANMEI_MAX_DATE",
}

// newViper reads config.yaml from configDir over the defaults. A missing
// file is not an error.
func newViper(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyCacheTTL, types.DefaultCacheTTL.String())
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	v.SetDefault(cfgKeyFormat, types.FormatText)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	v.SetConfigFile(filepath.Join(configDir, paths.ConfigFile))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// loadConfig resolves directories, reads config.yaml and the environment,
// applies flags and validates the result.
func loadConfig(f rootFlags) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := newViper(configDir)
	if err != nil {
		return types.Config{}, err
	}
	dataDir, err := paths.ResolveDataDir(f.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		CacheTTL: durationValue(v, cfgKeyCacheTTL),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Format:   v.GetString(cfgKeyFormat),
		MinDate:  dateValue(v, cfgKeyMinDate),
		MaxDate:  dateValue(v, cfgKeyMaxDate),
	}
	if f.format != "" {
		cfg.Format = f.format
	}
	if f.noCache {
		cfg.Backend = types.BackendNone
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// dateValue reads a date key. YAML decodes an unquoted 1924-02-05 as a
// timestamp, so both forms are accepted.
func dateValue(v *viper.Viper, key string) string {
	if t, ok := v.Get(key).(time.Time); ok {
		return types.DateOf(t).String()
	}
	return v.GetString(key)
}

// durationValue reads a duration key. Bare integers are seconds.
func durationValue(v *viper.Viper, key string) time.Duration {
	switch n := v.Get(key).(type) {
	case int:
		return time.Duration(n) * time.Second
	case int64:
		return time.Duration(n) * time.Second
	case string:
		if secs, err := strconv.Atoi(n); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return v.GetDuration(key)
}
