package sqlfixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaInit_SkipsNonScripts(t *testing.T) {
	scripts := t.TempDir()
	writeFile(t, scripts, "01_tables.sql", "CREATE TABLE wanted (id INTEGER);")
	writeFile(t, scripts, "notes.txt", "CREATE TABLE unwanted_txt (id INTEGER);")
	writeFile(t, scripts, "trailing.", "CREATE TABLE unwanted_dot (id INTEGER);")
	writeFile(t, scripts, "README", "CREATE TABLE unwanted_bare (id INTEGER);")
	require.NoError(t, os.Mkdir(filepath.Join(scripts, "nested.sql"), 0755))

	logger, buf := capturedLogger()
	r := SetupTest(t, WithScriptDir(scripts), WithDataDir(""), WithLogger(logger))

	tables, err := ListTables(context.Background(), r.Conn())
	require.NoError(t, err)
	assert.Equal(t, []string{"wanted"}, tables)

	out := buf.String()
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "trailing.")
	assert.Contains(t, out, "README")
	assert.Contains(t, out, "nested.sql")
	assert.Equal(t, 4, strings.Count(out, "skipping"))
}

func TestDefaultSchemaInit_ExtensionCaseInsensitive(t *testing.T) {
	scripts := t.TempDir()
	writeFile(t, scripts, "INIT.SQL", "CREATE TABLE shouty (id INTEGER);")

	r := SetupTest(t, WithScriptDir(scripts), WithDataDir(""))

	tables, err := ListTables(context.Background(), r.Conn())
	require.NoError(t, err)
	assert.Equal(t, []string{"shouty"}, tables)
}

func TestDefaultSchemaInit_RunsInNameOrder(t *testing.T) {
	scripts := t.TempDir()
	// Written out of order; directory reads are name-sorted.
	writeFile(t, scripts, "02_data.sql", "INSERT INTO ordered (id) VALUES (1);")
	writeFile(t, scripts, "01_tables.sql", "CREATE TABLE ordered (id INTEGER);")

	r := SetupTest(t, WithScriptDir(scripts), WithDataDir(""))
	assert.Equal(t, 1, countRows(t, r, "ordered"))
}

func TestDefaultSchemaInit_MultiStatementScript(t *testing.T) {
	scripts := t.TempDir()
	writeFile(t, scripts, "01_all.sql", `
CREATE TABLE a (id INTEGER);
CREATE TABLE b (id INTEGER);
INSERT INTO a (id) VALUES (1);
INSERT INTO b (id) VALUES (2);
`)

	r := SetupTest(t, WithScriptDir(scripts), WithDataDir(""))
	assert.Equal(t, 1, countRows(t, r, "a"))
	assert.Equal(t, 1, countRows(t, r, "b"))
}

func TestDefaultSchemaInit_MissingDirectorySkipsPhase(t *testing.T) {
	r := SetupTest(t, WithScriptDir(filepath.Join(t.TempDir(), "absent")), WithDataDir(""))

	tables, err := ListTables(context.Background(), r.Conn())
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestRunScript_RequiresConnection(t *testing.T) {
	r := New()
	assert.ErrorIs(t, r.RunScript(context.Background(), "anything.sql"), ErrNoConnection)
}

func TestRunScript_BadSQLFailsSetup(t *testing.T) {
	scripts := t.TempDir()
	writeFile(t, scripts, "broken.sql", "CREATE TABLE (((;")

	r := New(WithScriptDir(scripts), WithDataDir(""))
	err := r.Setup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.sql")
}
