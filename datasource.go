package sqlfixture

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DriverName is the database/sql driver the default data source opens.
const DriverName = "sqlite"

// DataSource describes how a Resource reaches its database. User and
// Password are carried for callers whose builders target authenticated
// engines; the embedded driver ignores them.
type DataSource struct {
	DSN      string
	User     string
	Password string
}

// Builder constructs the *sql.DB pool behind a Resource. The returned pool
// must reach the same database on every connection; Setup checks one
// dedicated connection out of it and holds that connection until Teardown.
type Builder func(ctx context.Context) (*sql.DB, error)

// memoryDSN names a shared-cache in-memory database. Every connection in
// the pool attaches to the same database for as long as at least one
// connection stays open.
func memoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// defaultDataSource points at an in-memory database with a name unique to
// this resource, so concurrently provisioned resources never share state.
func defaultDataSource() DataSource {
	return DataSource{DSN: memoryDSN("sqlfixture-" + uuid.New().String())}
}

// openDefault opens the pool described by the resource's DataSource.
func (r *Resource) openDefault(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(DriverName, r.ds.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

// NoCreate returns dsn with the driver's no-create directive appended.
// Opening the result fails when the database file does not already exist
// instead of silently creating an empty one. Plain file paths are
// rewritten as file: URIs so the directive survives DSN parsing. The
// directive is meaningful for file-backed databases; in-memory DSNs
// already carry a mode parameter and the driver resolves the conflict in
// favor of the last one.
func NoCreate(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		return "file:" + dsn + "?mode=rw"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&mode=rw"
	}
	return dsn + "?mode=rw"
}
