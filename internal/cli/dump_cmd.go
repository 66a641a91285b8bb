package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sqlfixture"
	"github.com/alexanderramin/sqlfixture/internal/cli/formatter"
)

// newDumpCmd creates the "dump" subcommand: print table contents from an
// existing database. Without table arguments it lists the tables instead.
func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [table...]",
		Short: "Print table contents from an existing database",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			dsn, err := requiredString(v, "db")
			if err != nil {
				return err
			}

			// The no-create directive keeps a mistyped path from
			// materializing as an empty database.
			db, err := sql.Open(sqlfixture.DriverName, sqlfixture.NoCreate(dsn))
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()
			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("opening database %s: %w", dsn, err)
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tables, err := sqlfixture.ListTables(cmd.Context(), db)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatTableList(tables))
				return nil
			}

			for i, table := range args {
				data, err := sqlfixture.ReadTable(cmd.Context(), db, table)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, formatter.FormatTableData(data))
			}
			return nil
		},
	}

	cmd.Flags().String("db", "", "database path or DSN to read")

	return cmd
}
