package sqlfixture

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLoad loads every file in the resource's data directory into the
// table named by the file, in sorted name order. A data directory that
// does not exist disables the phase. Unlike script discovery, a directory
// entry that is not a regular file fails the load: a fixture directory is
// expected to hold data files and nothing else.
func DefaultLoad(ctx context.Context, r *Resource) error {
	dir := r.dataDir
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading data directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := r.LoadFile(ctx, filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// TableName derives the target table from a fixture filename: everything
// before the last extension. A name without an extension is used whole.
func TableName(path string) string {
	name := filepath.Base(path)
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[:dot]
	}
	return name
}

// LoadFile loads one CSV fixture file into the table named by its
// filename. The first record names the target columns; every following
// record becomes one row, with empty fields inserted as NULL. The whole
// file loads in a single transaction, so a bad record leaves the table
// untouched. The path must name an existing regular file.
func (r *Resource) LoadFile(ctx context.Context, path string) error {
	if r.conn == nil {
		return ErrNoConnection
	}
	if path == "" {
		return ErrEmptyPath
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("fixture %s: %w", path, ErrMissingFixture)
		}
		return fmt.Errorf("fixture %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("fixture %s: %w", path, ErrNotRegularFile)
	}

	table := TableName(path)
	r.logger.Info("loading fixture", "path", path, "table", table)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture %s: %w", path, err)
	}
	defer f.Close()

	return runInTx(ctx, r.conn, func(ctx context.Context, tx *sql.Tx) error {
		return insertCSV(ctx, tx, table, f)
	})
}

// insertCSV reads CSV records from rd and inserts them into table through
// q. The first record is the header naming the target columns; a fixture
// with a header and no data records is valid and inserts nothing.
func insertCSV(ctx context.Context, q Querier, table string, rd io.Reader) error {
	reader := csv.NewReader(rd)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("fixture for table %s is empty, expected a header record", table)
		}
		return fmt.Errorf("reading fixture header: %w", err)
	}

	stmt, err := q.PrepareContext(ctx, insertStatement(table, header))
	if err != nil {
		return fmt.Errorf("preparing insert for table %s: %w", table, err)
	}
	defer stmt.Close()

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading fixture record: %w", err)
		}

		args := make([]any, len(record))
		for i, field := range record {
			if field == "" {
				continue // empty fields insert as NULL
			}
			args[i] = field
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting into table %s: %w", table, err)
		}
	}
}

// insertStatement builds the parameterized insert for a header record.
// Table and column names come from fixture files on disk, not user input,
// and are quoted rather than validated.
func insertStatement(table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
