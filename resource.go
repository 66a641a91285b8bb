package sqlfixture

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const (
	// DefaultScriptDir is scanned for schema scripts when no script
	// directory is configured.
	DefaultScriptDir = "testdata/sql"

	// DefaultDataDir is scanned for fixture files when no data directory
	// is configured.
	DefaultDataDir = "testdata/csv"
)

// Resource provisions one embedded database per test. Setup opens the data
// source and a dedicated connection, initializes the schema and loads
// fixture data over that connection; Teardown releases it. A Resource
// serves one test at a time and is not safe for concurrent use.
type Resource struct {
	scriptDir string
	dataDir   string
	logData   bool

	ds          DataSource
	builder     Builder
	foreignKeys bool

	schemaInit Hook
	beforeLoad Hook
	load       Hook
	afterLoad  Hook

	logger *slog.Logger

	db   *sql.DB
	conn *sql.Conn
}

// New returns an unopened Resource. Without options it provisions a
// private in-memory database, reads schema scripts from DefaultScriptDir
// and fixtures from DefaultDataDir; directories that do not exist are
// skipped.
func New(opts ...Option) *Resource {
	r := &Resource{
		scriptDir: DefaultScriptDir,
		dataDir:   DefaultDataDir,
		ds:        defaultDataSource(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Setup opens the data source and the resource's dedicated connection,
// then runs the provisioning phases in order: schema initialization,
// before-load hook, fixture load, after-load hook. The first failure stops
// the sequence, releases whatever was opened, and is returned.
func (r *Resource) Setup(ctx context.Context) error {
	if r.db != nil || r.conn != nil {
		return ErrAlreadySetup
	}

	build := r.builder
	if build == nil {
		build = r.openDefault
	}
	db, err := build(ctx)
	if err != nil {
		return fmt.Errorf("building data source: %w", err)
	}
	r.db = db

	conn, err := db.Conn(ctx)
	if err != nil {
		r.close()
		return fmt.Errorf("opening connection: %w", err)
	}
	r.conn = conn

	if r.foreignKeys {
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			r.close()
			return fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	phases := []struct {
		name string
		hook Hook
	}{
		{"initializing schema", hookOrDefault(r.schemaInit, DefaultSchemaInit)},
		{"running before-load hook", r.beforeLoad},
		{"loading fixtures", hookOrDefault(r.load, DefaultLoad)},
		{"running after-load hook", hookOrDefault(r.afterLoad, DefaultAfterLoad)},
	}
	for _, p := range phases {
		if p.hook == nil {
			continue
		}
		if err := p.hook(ctx, r); err != nil {
			r.close()
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return nil
}

func hookOrDefault(h, def Hook) Hook {
	if h != nil {
		return h
	}
	return def
}

// Teardown closes the connection and pool opened by Setup. Failures are
// logged, not returned: teardown runs after the test has already passed or
// failed, and its outcome must not change the test's. Calling Teardown
// early or more than once is a no-op.
func (r *Resource) Teardown() {
	r.close()
}

// close releases the connection and pool, in that order, logging failures.
func (r *Resource) close() {
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			r.logger.Warn("closing connection", "error", err)
		}
		r.conn = nil
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			r.logger.Warn("closing database handle", "error", err)
		}
		r.db = nil
	}
}

// Query runs query on the resource's connection. The caller owns the
// returned rows and must close them.
func (r *Resource) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if r.conn == nil {
		return nil, ErrNoConnection
	}
	return r.conn.QueryContext(ctx, query, args...)
}

// Exec runs query on the resource's connection.
func (r *Resource) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if r.conn == nil {
		return nil, ErrNoConnection
	}
	return r.conn.ExecContext(ctx, query, args...)
}

// DB exposes the pool behind the resource, or nil before Setup. Schema and
// data work should prefer the resource's own helpers, which use the
// dedicated connection.
func (r *Resource) DB() *sql.DB { return r.db }

// Conn exposes the dedicated connection, or nil before Setup.
func (r *Resource) Conn() *sql.Conn { return r.conn }

// DSN returns the configured data source name. With noCreate set, the
// driver's no-create directive is appended so that opening the result
// fails when the database file does not already exist; see NoCreate.
func (r *Resource) DSN(noCreate bool) string {
	if noCreate {
		return NoCreate(r.ds.DSN)
	}
	return r.ds.DSN
}

// User returns the configured user name, empty unless WithCredentials set it.
func (r *Resource) User() string { return r.ds.User }

// Password returns the configured password, empty unless WithCredentials
// set it.
func (r *Resource) Password() string { return r.ds.Password }

// ScriptDir returns the schema script directory.
func (r *Resource) ScriptDir() string { return r.scriptDir }

// SetScriptDir changes the schema script directory, effective on the next
// Setup.
func (r *Resource) SetScriptDir(dir string) { r.scriptDir = dir }

// DataDir returns the fixture data directory.
func (r *Resource) DataDir() string { return r.dataDir }

// SetDataDir changes the fixture data directory, effective on the next
// Setup.
func (r *Resource) SetDataDir(dir string) { r.dataDir = dir }

// LogLoadedData reports whether loaded tables are logged row by row after
// the load phase.
func (r *Resource) LogLoadedData() bool { return r.logData }

// SetLogLoadedData turns per-row logging of loaded tables on or off.
func (r *Resource) SetLogLoadedData(on bool) { r.logData = on }

// Logger returns the resource's logger.
func (r *Resource) Logger() *slog.Logger { return r.logger }
