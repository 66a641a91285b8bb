package sqlfixture

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithVersionedSchema_AppliesMigrations(t *testing.T) {
	migrations := t.TempDir()
	writeFile(t, migrations, "00001_users.sql", `-- +goose Up
CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    email TEXT NOT NULL
);

-- +goose Down
DROP TABLE users;
`)
	data := t.TempDir()
	writeFile(t, data, "users.csv", "id,email\n1,ada@example.com\n")

	r := SetupTest(t, WithVersionedSchema(migrations), WithDataDir(data))
	assert.Equal(t, 1, countRows(t, r, "users"))

	tables, err := ListTables(context.Background(), r.Conn())
	require.NoError(t, err)
	assert.Contains(t, tables, "users")
	assert.Contains(t, tables, "goose_db_version")
}

func TestWithVersionedSchema_SequentialMigrations(t *testing.T) {
	migrations := t.TempDir()
	writeFile(t, migrations, "00001_users.sql", `-- +goose Up
CREATE TABLE users (id INTEGER PRIMARY KEY);

-- +goose Down
DROP TABLE users;
`)
	writeFile(t, migrations, "00002_add_email.sql", `-- +goose Up
ALTER TABLE users ADD COLUMN email TEXT;

-- +goose Down
ALTER TABLE users DROP COLUMN email;
`)

	r := SetupTest(t, WithVersionedSchema(migrations), WithDataDir(""))
	_, err := r.Exec(context.Background(), "INSERT INTO users (id, email) VALUES (1, 'ada@example.com')")
	assert.NoError(t, err)
}

func TestWithVersionedSchema_MissingDirectoryFails(t *testing.T) {
	r := New(
		WithVersionedSchema(filepath.Join(t.TempDir(), "absent")),
		WithDataDir(""),
	)
	err := r.Setup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration directory")
	assert.Nil(t, r.Conn())
}
