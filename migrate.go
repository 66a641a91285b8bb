package sqlfixture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
)

// WithVersionedSchema replaces the schema phase with goose migrations from
// dir, so fixtures can be built against a project's real migration set
// instead of ad hoc scripts. Migrations run on the resource's pool, which
// must reach the same database as the dedicated connection; the default
// data source does. Unlike the script directory, a missing migration
// directory is an error.
func WithVersionedSchema(dir string) Option {
	return func(r *Resource) {
		r.schemaInit = func(ctx context.Context, r *Resource) error {
			return r.applyMigrations(ctx, dir)
		}
	}
}

func (r *Resource) applyMigrations(ctx context.Context, dir string) error {
	if r.db == nil {
		return ErrNoConnection
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("migration directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("migration directory %s is not a directory", dir)
	}

	// goose configuration is process-global; reset the FS afterward so
	// later goose callers are unaffected.
	goose.SetLogger(&gooseLogger{logger: r.logger})
	goose.SetBaseFS(os.DirFS(dir))
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db, "."); err != nil {
		return fmt.Errorf("applying migrations from %s: %w", dir, err)
	}
	return nil
}

// gooseLogger adapts goose's logger interface onto slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
