package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sqlfixture/internal/logging"
)

// NewRootCmd creates the top-level "sqlfixture" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	var verbosity string

	root := &cobra.Command{
		Use:   "sqlfixture",
		Short: "Provision SQLite test databases from SQL scripts and CSV fixtures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			v := verbosity
			if !cmd.Root().PersistentFlags().Changed("verbosity") {
				if env := os.Getenv("SQLFIXTURE_VERBOSITY"); env != "" {
					v = env
				}
			}
			logging.Setup(logging.Options{Verbosity: v})
		},
	}
	root.PersistentFlags().StringVar(&verbosity, "verbosity", "info", "log verbosity (debug, info, warn, error)")

	root.AddCommand(
		newLoadCmd(),
		newDumpCmd(),
		newSeedCmd(),
	)

	return root
}
