package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errCacheDisabled = errors.New("reading cache is disabled (backend none or --no-cache)")

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the reading cache",
	}
	cmd.AddCommand(
		a.cacheCmd("stats", "Show entry counts", cobra.NoArgs, a.cacheStats),
		a.cacheCmd("prune", "Delete expired entries", cobra.NoArgs, a.cachePrune),
		a.cacheCmd("clear", "Delete every entry", cobra.NoArgs, a.cacheClear),
		a.cacheCmd("export FILE", "Write live entries to a JSONL file", cobra.ExactArgs(1), a.cacheExport),
		a.cacheCmd("import FILE", "Load entries from a JSONL export", cobra.ExactArgs(1), a.cacheImport),
	)
	return cmd
}

// cacheCmd wraps run with the attach and detach every cache command needs.
func (a *app) cacheCmd(use, short string, args cobra.PositionalArgs, run func(io.Writer, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd, true); err != nil {
				return err
			}
			defer a.close()
			if a.store == nil {
				return userError(errCacheDisabled)
			}
			return run(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) cacheStats(w io.Writer, _ []string) error {
	st, err := a.store.Stats()
	if err != nil {
		return sysError(err)
	}
	return a.emit(w, st, func(w io.Writer) error {
		fmt.Fprintf(w, "path      %s\n", st.Path)
		fmt.Fprintf(w, "entries   %d (%d readings, %d pairings)\n", st.Entries, st.Readings, st.Pairings)
		fmt.Fprintf(w, "expired   %d\n", st.Expired)
		if st.Entries > 0 {
			fmt.Fprintf(w, "oldest    %s\n", st.Oldest.Format("2006-01-02 15:04:05Z07:00"))
			fmt.Fprintf(w, "newest    %s\n", st.Newest.Format("2006-01-02 15:04:05Z07:00"))
		}
		return nil
	})
}

func (a *app) cachePrune(w io.Writer, _ []string) error {
	n, err := a.store.Prune()
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintf(w, "pruned %d expired entries\n", n)
	return nil
}

func (a *app) cacheClear(w io.Writer, _ []string) error {
	n, err := a.store.Clear()
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintf(w, "cleared %d entries\n", n)
	return nil
}

func (a *app) cacheExport(w io.Writer, args []string) error {
	n, err := a.store.Export(args[0])
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintf(w, "exported %d entries to %s\n", n, args[0])
	return nil
}

func (a *app) cacheImport(w io.Writer, args []string) error {
	n, err := a.store.Import(args[0])
	if err != nil {
		return userError(err)
	}
	fmt.Fprintf(w, "imported %d entries from %s\n", n, args[0])
	return nil
}
