package sqlfixture

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TableData is a snapshot of one table: column names in result order and
// row values rendered as strings, NULL rendered as "NULL".
type TableData struct {
	Table   string
	Columns []string
	Rows    [][]string
}

// DefaultAfterLoad logs the contents of every loaded table when data
// logging is enabled, one Info line per row. Table names are derived from
// the data directory the same way the load phase derives them.
func DefaultAfterLoad(ctx context.Context, r *Resource) error {
	if !r.logData {
		return nil
	}
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
		if err := r.logTableContents(ctx, TableName(entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// TableContents reads the full contents of table over the resource's
// connection.
func (r *Resource) TableContents(ctx context.Context, table string) (*TableData, error) {
	if r.conn == nil {
		return nil, ErrNoConnection
	}
	return ReadTable(ctx, r.conn, table)
}

// ReadTable reads the full contents of table through q.
func ReadTable(ctx context.Context, q Querier, table string) (*TableData, error) {
	rows, err := q.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns of table %s: %w", table, err)
	}

	data := &TableData{Table: table, Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range values {
			scans[i] = &values[i]
		}
		if err := rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("scanning row of table %s: %w", table, err)
		}
		rendered := make([]string, len(columns))
		for i, v := range values {
			rendered[i] = renderValue(v)
		}
		data.Rows = append(data.Rows, rendered)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table %s: %w", table, err)
	}
	return data, nil
}

// ListTables returns the user tables visible through q, sorted by name.
// Internal sqlite_* tables are excluded.
func ListTables(ctx context.Context, q Querier) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}

// renderValue formats a scanned column value for logs and dumps.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// logTableContents writes every row of table to the resource's logger at
// Info level, columns rendered as "name = value" pairs in column order.
func (r *Resource) logTableContents(ctx context.Context, table string) error {
	data, err := r.TableContents(ctx, table)
	if err != nil {
		return err
	}
	r.logger.Info("table contents", "table", table, "rows", len(data.Rows))
	for i, row := range data.Rows {
		pairs := make([]string, len(data.Columns))
		for j, col := range data.Columns {
			pairs[j] = fmt.Sprintf("%s = %s", col, row[j])
		}
		r.logger.Info(fmt.Sprintf("row #%d: %s", i+1, strings.Join(pairs, ", ")), "table", table)
	}
	return nil
}
