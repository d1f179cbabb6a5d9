package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sanmei/pkg/sanmei"
)

const modulePath = "github.com/mesh-intelligence/sanmei"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sanmei version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sanmei v%s\nmodule: %s\n", sanmei.Version, modulePath)
			return nil
		},
	}
}
