package sqlfixture

import (
	"context"
	"testing"
)

// SetupTest provisions a Resource for tb: Setup runs immediately and
// Teardown is registered with tb.Cleanup, so every test gets a fresh
// database that is released when the test finishes, pass or fail.
func SetupTest(tb testing.TB, opts ...Option) *Resource {
	tb.Helper()

	r := New(opts...)
	if err := r.Setup(context.Background()); err != nil {
		tb.Fatalf("setting up fixture: %v", err)
	}
	tb.Cleanup(r.Teardown)
	return r
}
