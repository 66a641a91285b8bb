// Package sqlfixture provisions embedded SQLite databases for tests.
//
// A Resource owns one database per test. Setup opens the data source and a
// dedicated connection, executes the SQL scripts found in the script
// directory, loads the CSV fixture files found in the data directory, and
// Teardown releases the connection afterward. Each phase can be replaced
// with a Hook.
//
//	r := sqlfixture.SetupTest(t,
//		sqlfixture.WithScriptDir("testdata/schema"),
//		sqlfixture.WithDataDir("testdata/fixtures"),
//	)
//	rows, err := r.Query(ctx, "SELECT name FROM people ORDER BY id")
//
// Fixture filenames map to tables: everything before the last extension is
// the table name, so people.csv loads the table "people". The first CSV
// record names the target columns.
package sqlfixture
