package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the chemicals release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/chemicals"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chemicals version",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "chemicals v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
