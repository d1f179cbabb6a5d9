package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCompatCmd(a *app) *cobra.Command {
	var nameA, nameB string
	cmd := &cobra.Command{
		Use:     "compat DATE_A DATE_B",
		Short:   "Compare two birth dates for working compatibility",
		Example: "  sanmei compat 1994-01-21 2000-01-01 --name-a Aiko --name-b Ben",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd, true); err != nil {
				return err
			}
			defer a.close()

			sa, err := a.parseSubject(nameA, args[0])
			if err != nil {
				return err
			}
			sb, err := a.parseSubject(nameB, args[1])
			if err != nil {
				return err
			}
			p, err := a.engine().Compare(sa, sb)
			if err != nil {
				return userError(err)
			}
			if err := p.Check(); err != nil {
				return sysError(fmt.Errorf("refusing to report an inconsistent pairing: %w", err))
			}
			return a.emit(cmd.OutOrStdout(), p, func(w io.Writer) error { return writePairing(w, p) })
		},
	}
	cmd.Flags().StringVar(&nameA, "name-a", "", "display name for the first person")
	cmd.Flags().StringVar(&nameB, "name-b", "", "display name for the second person")
	return cmd
}
