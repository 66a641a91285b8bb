package cli

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/sqlfixture"
	"github.com/alexanderramin/sqlfixture/internal/cli/formatter"
)

// newSeedCmd creates the "seed" subcommand: generate a CSV fixture for a
// table by reading its column layout and filling rows with fake values.
func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a CSV fixture with fake data for a table",
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
			table, err := requiredString(v, "table")
			if err != nil {
				return err
			}
			rows := v.GetInt("rows")
			outPath := v.GetString("out")
			if outPath == "" {
				outPath = table + ".csv"
			}

			db, err := sql.Open(sqlfixture.DriverName, sqlfixture.NoCreate(dsn))
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			columns, err := tableColumns(cmd.Context(), db, table)
			if err != nil {
				return err
			}

			faker := gofakeit.New(v.GetUint64("seed"))

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating fixture file: %w", err)
			}
			defer f.Close()

			if err := writeFixture(f, columns, rows, faker); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d rows for %s into %s\n",
				formatter.OK("generated"), rows, table, outPath)
			return nil
		},
	}

	cmd.Flags().String("db", "", "database path or DSN to read column layout from")
	cmd.Flags().String("table", "", "table to generate a fixture for")
	cmd.Flags().Int("rows", 10, "number of rows to generate")
	cmd.Flags().Uint64("seed", 0, "random seed for reproducible output (0 picks one)")
	cmd.Flags().String("out", "", "output file (defaults to <table>.csv)")

	return cmd
}

// column describes one table column as reported by the database.
type column struct {
	name     string
	declType string
	pk       bool
}

// tableColumns reads the column layout of table via PRAGMA table_info.
func tableColumns(ctx context.Context, q sqlfixture.Querier, table string) ([]column, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("reading columns of table %s: %w", table, err)
	}
	defer rows.Close()

	var cols []column
	for rows.Next() {
		var (
			cid, notnull, pk int
			name, declType   string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &declType, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		cols = append(cols, column{name: name, declType: declType, pk: pk > 0})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading columns of table %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}
	return cols, nil
}

// writeFixture writes a CSV header plus n fake records shaped by cols.
func writeFixture(w io.Writer, cols []column, n int, faker *gofakeit.Faker) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < n; i++ {
		record := make([]string, len(cols))
		for j, c := range cols {
			record[j] = fakeValue(c, i, faker)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// fakeValue picks a value for one cell from the column's declared type,
// falling back to name hints for text columns. Integer primary keys count
// up from 1 so generated rows never collide.
func fakeValue(c column, row int, faker *gofakeit.Faker) string {
	decl := strings.ToUpper(c.declType)
	name := strings.ToLower(c.name)

	switch {
	case c.pk && strings.Contains(decl, "INT"):
		return strconv.Itoa(row + 1)
	case strings.Contains(decl, "INT"):
		return strconv.Itoa(faker.Number(1, 1000))
	case strings.Contains(decl, "REAL"),
		strings.Contains(decl, "FLOA"),
		strings.Contains(decl, "DOUB"),
		strings.Contains(decl, "DEC"),
		strings.Contains(decl, "NUM"):
		return strconv.FormatFloat(faker.Float64Range(0, 1000), 'f', 2, 64)
	case strings.Contains(decl, "BOOL"):
		if faker.Bool() {
			return "1"
		}
		return "0"
	case strings.Contains(decl, "DATE"), strings.Contains(decl, "TIME"):
		return faker.DateRange(
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		).UTC().Format(time.RFC3339)
	case strings.Contains(name, "email"):
		return faker.Email()
	case strings.Contains(name, "name"):
		return faker.Name()
	case strings.Contains(name, "city"):
		return faker.City()
	default:
		return faker.Word()
	}
}
