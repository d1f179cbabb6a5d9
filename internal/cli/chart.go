package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newChartCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "chart DATE",
		Short: "Compute the chart and personal report for a birth date",
		Example: "  sanmei chart 1994-01-21\n" +
			"  sanmei chart 1994-01-21 --name Aiko -o json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd, true); err != nil {
				return err
			}
			defer a.close()

			subj, err := a.parseSubject(name, args[0])
			if err != nil {
				return err
			}
			r, err := a.engine().Read(subj)
			if err != nil {
				return userError(err)
			}
			if err := r.Check(); err != nil {
				return sysError(fmt.Errorf("refusing to report an inconsistent chart: %w", err))
			}
			return a.emit(cmd.OutOrStdout(), r, func(w io.Writer) error { return writeReading(w, r) })
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name for the report")
	return cmd
}
