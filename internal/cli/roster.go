package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/internal/roster"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

type rosterFlags struct {
	watch bool
	limit int
}

func newRosterCmd(a *app) *cobra.Command {
	var f rosterFlags
	cmd := &cobra.Command{
		Use:   "roster FILE",
		Short: "Read every member of a TOML team roster and compare every pair",
		Example: "  sanmei roster team.toml\n" +
			"  sanmei roster team.toml --watch",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd, true); err != nil {
				return err
			}
			defer a.close()
			return a.runRoster(cmd, args[0], f)
		},
	}
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "re-run whenever the file changes")
	cmd.Flags().IntVar(&f.limit, "limit", 8, "maximum concurrent evaluations (0 for no limit)")
	return cmd
}

func (a *app) runRoster(cmd *cobra.Command, path string, f rosterFlags) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if !f.watch {
		return a.evalRoster(ctx, out, path, f.limit)
	}

	report := func() {
		if err := a.evalRoster(ctx, out, path, f.limit); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
	}
	report()
	a.log.Info("watching roster", zap.String("path", path))
	if err := roster.Watch(ctx, path, roster.DefaultDebounce, a.log, report); err != nil {
		return sysError(err)
	}
	return nil
}

func (a *app) evalRoster(ctx context.Context, w io.Writer, path string, limit int) error {
	r, err := roster.Load(path)
	if err != nil {
		return userError(err)
	}
	for _, m := range r.Members {
		if err := a.cfg.CheckDate(m.Date); err != nil {
			return userError(fmt.Errorf("%q: %w", m.Name, err))
		}
	}

	res, err := roster.Run(ctx, a.engine(), r, limit)
	switch {
	case errors.Is(err, types.ErrUndefinedStar), errors.Is(err, types.ErrUnknownGroup):
		return sysError(fmt.Errorf("refusing to report an inconsistent roster: %w", err))
	case err != nil:
		return userError(err)
	}
	return a.emit(w, res, func(w io.Writer) error { return writeRoster(w, res) })
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
