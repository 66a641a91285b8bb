package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sqlfixture"
	"github.com/alexanderramin/sqlfixture/internal/cli/formatter"
)

// newLoadCmd creates the "load" subcommand: provision a database from
// schema scripts and fixture files, typically a file-backed one that
// outlives the command for inspection or reuse.
func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Provision a database from schema scripts and CSV fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			dsn, err := requiredString(v, "db")
			if err != nil {
				return err
			}

			opts := []sqlfixture.Option{
				sqlfixture.WithDSN(dsn),
				sqlfixture.WithScriptDir(v.GetString("schema")),
				sqlfixture.WithDataDir(v.GetString("data")),
				sqlfixture.WithLogLoadedData(v.GetBool("log-data")),
			}
			if migrations := v.GetString("migrations"); migrations != "" {
				opts = append(opts, sqlfixture.WithVersionedSchema(migrations))
			}

			r := sqlfixture.New(opts...)
			if err := r.Setup(cmd.Context()); err != nil {
				return err
			}
			defer r.Teardown()

			tables, err := sqlfixture.ListTables(cmd.Context(), r.Conn())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s with %d tables\n",
				formatter.OK("provisioned"), dsn, len(tables))
			return nil
		},
	}

	cmd.Flags().String("db", "", "target database path or DSN")
	cmd.Flags().String("schema", sqlfixture.DefaultScriptDir, "directory of SQL schema scripts")
	cmd.Flags().String("data", sqlfixture.DefaultDataDir, "directory of CSV fixture files")
	cmd.Flags().String("migrations", "", "apply goose migrations from this directory instead of schema scripts")
	cmd.Flags().Bool("log-data", false, "log loaded table contents row by row")

	return cmd
}
