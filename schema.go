package sqlfixture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// scriptExtension is the only extension the schema phase executes.
const scriptExtension = "sql"

// DefaultSchemaInit executes every SQL script in the resource's script
// directory, in sorted name order. A script directory that does not exist
// disables the phase. Entries that are not regular ".sql" files are
// skipped with a warning; see RunScript.
func DefaultSchemaInit(ctx context.Context, r *Resource) error {
	dir := r.scriptDir
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading script directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := r.RunScript(ctx, filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// RunScript executes the SQL script at path on the resource's connection.
// Scripts may hold multiple statements. Entries that do not look like SQL
// scripts are skipped with a warning rather than failing the run: names
// ending in a bare dot, names with no extension, extensions other than
// "sql" in any casing, and anything that is not a regular file.
func (r *Resource) RunScript(ctx context.Context, path string) error {
	if r.conn == nil {
		return ErrNoConnection
	}

	name := filepath.Base(path)
	if strings.HasSuffix(name, ".") {
		r.logger.Warn("script name ends with a bare dot, skipping", "path", path)
		return nil
	}
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		r.logger.Warn("script name has no extension, skipping", "path", path)
		return nil
	}
	if ext := name[dot+1:]; !strings.EqualFold(ext, scriptExtension) {
		r.logger.Warn("script extension is not .sql, skipping", "path", path, "extension", ext)
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		r.logger.Warn("script is not a regular file, skipping", "path", path)
		return nil
	}

	r.logger.Info("executing script", "path", path)
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	if _, err := r.conn.ExecContext(ctx, string(script)); err != nil {
		return fmt.Errorf("executing script %s: %w", path, err)
	}
	return nil
}
