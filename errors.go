package sqlfixture

import "errors"

var (
	// ErrNoConnection is returned by database operations invoked before
	// Setup has opened the resource's connection, or after Teardown has
	// closed it.
	ErrNoConnection = errors.New("sqlfixture: no open connection")

	// ErrAlreadySetup is returned by Setup when the resource already
	// holds an open connection.
	ErrAlreadySetup = errors.New("sqlfixture: resource already set up")

	// ErrEmptyPath reports an empty fixture path.
	ErrEmptyPath = errors.New("sqlfixture: empty fixture path")

	// ErrMissingFixture reports a fixture path that does not exist.
	ErrMissingFixture = errors.New("sqlfixture: fixture file does not exist")

	// ErrNotRegularFile reports a fixture path that names something other
	// than a regular file.
	ErrNotRegularFile = errors.New("sqlfixture: not a regular file")
)
