package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sanmei/internal/logging"
	"github.com/mesh-intelligence/sanmei/internal/paths"
	"github.com/mesh-intelligence/sanmei/internal/sqlite"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// configFile is the structure written to config.yaml.
type configFile struct {
	Backend   string    `yaml:"backend"`
	DataDir   string    `yaml:"data_dir,omitempty"`
	CacheTTL  string    `yaml:"cache_ttl"`
	LogLevel  string    `yaml:"log_level"`
	Format    string    `yaml:"format"`
	DateRange dateRange `yaml:"date_range,omitempty"`
}

type dateRange struct {
	Min string `yaml:"min,omitempty"`
	Max string `yaml:"max,omitempty"`
}

type initFlags struct {
	force   bool
	minDate string
	maxDate string
}

func newInitCmd(a *app) *cobra.Command {
	var f initFlags
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and create the reading cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, f)
		},
	}
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite an existing config.yaml")
	cmd.Flags().StringVar(&f.minDate, "min-date", "", "earliest accepted birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.maxDate, "max-date", "", "latest accepted birth date (YYYY-MM-DD)")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, f initFlags) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, "")
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	cf := configFile{
		Backend:   types.BackendSQLite,
		CacheTTL:  types.DefaultCacheTTL.String(),
		LogLevel:  logging.DefaultLevel,
		Format:    types.FormatText,
		DateRange: dateRange{Min: f.minDate, Max: f.maxDate},
	}
	if a.flags.dataDir != "" {
		cf.DataDir = dataDir
	}
	cfg := types.Config{
		Backend:  cf.Backend,
		DataDir:  dataDir,
		CacheTTL: types.DefaultCacheTTL,
		LogLevel: cf.LogLevel,
		Format:   cf.Format,
		MinDate:  f.minDate,
		MaxDate:  f.maxDate,
	}
	if err := cfg.Validate(); err != nil {
		return userError(err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	configPath := filepath.Join(configDir, paths.ConfigFile)
	wrote, err := writeConfig(configPath, cf, f.force)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	store := sqlite.NewStore(nil)
	if err := store.Attach(cfg); err != nil {
		return sysError(fmt.Errorf("initialize reading cache: %w", err))
	}
	dbPath := store.Path()
	if err := store.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize reading cache: %w", err))
	}

	out := cmd.OutOrStdout()
	if wrote {
		fmt.Fprintf(out, "wrote %s\n", configPath)
	} else {
		fmt.Fprintf(out, "kept existing %s\n", configPath)
	}
	fmt.Fprintf(out, "reading cache at %s\n", dbPath)
	return nil
}

// writeConfig writes cf to path unless the file exists and force is unset.
// It reports whether the file was written.
func writeConfig(path string, cf configFile, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}
	data, err := yaml.Marshal(&cf)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
