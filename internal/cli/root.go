// Package cli implements the sanmei command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/internal/engine"
	"github.com/mesh-intelligence/sanmei/internal/logging"
	"github.com/mesh-intelligence/sanmei/internal/sqlite"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err to a process exit code. Errors that do not carry one,
// such as cobra's argument errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
	noCache   bool
	verbose   bool
}

// app is the state shared by one command invocation.
type app struct {
	flags rootFlags
	cfg   types.Config
	log   *zap.Logger
	store *sqlite.Store
}

// NewRootCmd creates the top-level "sanmei" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sanmei",
		Short: "Sexagenary birth charts and compatibility readings",
		Long: "sanmei derives the three pillars and five-position star chart of a birth date,\n" +
			"and compares two charts for working compatibility.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory for the reading cache")
	pf.StringVarP(&a.flags.format, "format", "o", "", "output format: text, json or yaml")
	pf.BoolVar(&a.flags.noCache, "no-cache", false, "bypass the reading cache")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newChartCmd(a),
		newCompatCmd(a),
		newRosterCmd(a),
		newCacheCmd(a),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// open loads configuration and builds the logger. withStore also attaches
// the reading cache when the configuration enables it. The caller must
// defer close.
func (a *app) open(cmd *cobra.Command, withStore bool) error {
	cfg, err := loadConfig(a.flags)
	if err != nil {
		return userError(err)
	}
	a.cfg = cfg

	log, err := logging.New(cfg.LogLevel, a.flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return userError(err)
	}
	a.log = log

	if !withStore || cfg.Backend != types.BackendSQLite {
		return nil
	}
	store := sqlite.NewStore(log)
	if err := store.Attach(cfg); err != nil {
		return sysError(fmt.Errorf("attach reading cache: %w", err))
	}
	a.store = store
	return nil
}

// engine returns the engine for this invocation, cached when a store is
// attached.
func (a *app) engine() types.Engine {
	eng := engine.New(a.log)
	if a.store == nil {
		return eng
	}
	return engine.NewCached(eng, a.store, a.cfg.CacheTTL, a.log)
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Detach(); err != nil {
			a.log.Warn("detach reading cache", zap.Error(err))
		}
		a.store = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// parseSubject validates a date argument against the configured range.
func (a *app) parseSubject(name, arg string) (types.Subject, error) {
	d, err := types.ParseDate(arg)
	if err != nil {
		return types.Subject{}, userError(err)
	}
	if err := a.cfg.CheckDate(d); err != nil {
		return types.Subject{}, userError(err)
	}
	return types.Subject{Name: name, Date: d}, nil
}

// emit writes v in the configured format, using text for the text format.
func (a *app) emit(w io.Writer, v any, text func(io.Writer) error) error {
	if err := render(w, a.cfg.Format, v, text); err != nil {
		return sysError(err)
	}
	return nil
}
