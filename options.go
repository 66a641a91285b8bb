package sqlfixture

import (
	"context"
	"log/slog"
)

// Option configures a Resource at construction time.
type Option func(*Resource)

// Hook runs one phase of Setup with the resource's connection open.
// Returning an error aborts Setup and releases the resource.
type Hook func(ctx context.Context, r *Resource) error

// WithScriptDir sets the directory scanned for schema scripts. An empty
// string disables the schema phase.
func WithScriptDir(dir string) Option {
	return func(r *Resource) { r.scriptDir = dir }
}

// WithDataDir sets the directory scanned for CSV fixture files. An empty
// string disables the load phase.
func WithDataDir(dir string) Option {
	return func(r *Resource) { r.dataDir = dir }
}

// WithLogLoadedData turns per-row logging of loaded tables on or off.
func WithLogLoadedData(on bool) Option {
	return func(r *Resource) { r.logData = on }
}

// WithLogger routes the resource's log output through l. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resource) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDSN points the default data source at dsn instead of a private
// in-memory database. Anything the sqlite driver accepts works here: a
// plain file path or a file: URI.
func WithDSN(dsn string) Option {
	return func(r *Resource) { r.ds.DSN = dsn }
}

// WithCredentials records the user and password reported by the User and
// Password accessors. The embedded driver does not authenticate; custom
// builders may read them back.
func WithCredentials(user, password string) Option {
	return func(r *Resource) {
		r.ds.User = user
		r.ds.Password = password
	}
}

// WithDataSource replaces pool construction entirely.
func WithDataSource(b Builder) Option {
	return func(r *Resource) { r.builder = b }
}

// WithForeignKeys enables foreign key enforcement on the resource's
// connection before any schema or data work runs. Off by default: fixture
// files load in name order, which rarely matches reference order.
func WithForeignKeys() Option {
	return func(r *Resource) { r.foreignKeys = true }
}

// WithSchemaInit replaces the schema phase. The default executes every SQL
// script in the script directory; see DefaultSchemaInit.
func WithSchemaInit(h Hook) Option {
	return func(r *Resource) { r.schemaInit = h }
}

// WithBeforeLoad runs h between schema initialization and the fixture
// load. There is no default before-load phase.
func WithBeforeLoad(h Hook) Option {
	return func(r *Resource) { r.beforeLoad = h }
}

// WithLoad replaces the fixture load phase. The default loads every file
// in the data directory; see DefaultLoad.
func WithLoad(h Hook) Option {
	return func(r *Resource) { r.load = h }
}

// WithAfterLoad replaces the after-load phase. The default logs loaded
// tables when data logging is enabled; see DefaultAfterLoad.
func WithAfterLoad(h Hook) Option {
	return func(r *Resource) { r.afterLoad = h }
}
