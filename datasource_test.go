package sqlfixture

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_NoCreateDirective(t *testing.T) {
	base := New()
	assert.Equal(t, base.DSN(false)+"&mode=rw", base.DSN(true))

	uri := New(WithDSN("file:/srv/fixture.db"))
	assert.Equal(t, "file:/srv/fixture.db", uri.DSN(false))
	assert.Equal(t, "file:/srv/fixture.db?mode=rw", uri.DSN(true))

	plain := New(WithDSN("fixture.db"))
	assert.Equal(t, "fixture.db", plain.DSN(false))
	assert.Equal(t, "file:fixture.db?mode=rw", plain.DSN(true))
}

func TestNoCreate_FailsOnMissingFile(t *testing.T) {
	dsn := NoCreate(filepath.Join(t.TempDir(), "absent.db"))

	db, err := sql.Open(DriverName, dsn)
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, db.Ping(), "no-create open should fail when the file is missing")
}

func TestNoCreate_OpensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "present.db")
	r := SetupTest(t, WithDSN(path), WithScriptDir(""), WithDataDir(""))
	_, err := r.Exec(context.Background(), "CREATE TABLE marker (id INTEGER)")
	require.NoError(t, err)

	db, err := sql.Open(DriverName, r.DSN(true))
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM marker").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestDefaultDSN_UniquePerResource(t *testing.T) {
	assert.NotEqual(t, New().DSN(false), New().DSN(false))
}

func TestResources_AreIsolated(t *testing.T) {
	r1 := SetupTest(t, WithScriptDir(""), WithDataDir(""))
	r2 := SetupTest(t, WithScriptDir(""), WithDataDir(""))

	_, err := r1.Exec(context.Background(), "CREATE TABLE only_here (id INTEGER)")
	require.NoError(t, err)

	tables, err := ListTables(context.Background(), r2.Conn())
	require.NoError(t, err)
	assert.NotContains(t, tables, "only_here")
}

func TestWithCredentials(t *testing.T) {
	r := New(WithCredentials("tester", "hunter2"))
	assert.Equal(t, "tester", r.User())
	assert.Equal(t, "hunter2", r.Password())
}

func TestWithForeignKeys_Enforced(t *testing.T) {
	r := SetupTest(t, WithScriptDir(""), WithDataDir(""), WithForeignKeys())
	ctx := context.Background()
	_, err := r.Exec(ctx, "CREATE TABLE parents (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = r.Exec(ctx, "CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER REFERENCES parents(id))")
	require.NoError(t, err)

	_, err = r.Exec(ctx, "INSERT INTO children (id, parent_id) VALUES (1, 42)")
	assert.Error(t, err, "orphan insert should violate the foreign key")
}
