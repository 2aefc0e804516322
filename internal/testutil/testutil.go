// Package testutil contains helpers shared by the test suites
package testutil

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/marathon/internal/osutil"
)

// DiscardLogger is a logger that drops every record.
var DiscardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// CompareGoldenFile verifies that output matches the contents of
// testdata/<name>.golden. Run the tests with -update to regenerate it.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// CopyFixture copies the fixture at src to dst, failing the test on error.
func CopyFixture(t *testing.T, src, dst string) {
	t.Helper()

	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", src, err)
	}

	if err = os.WriteFile(dst, b, osutil.FilePermission); err != nil {
		t.Fatalf("writing fixture to %s: %v", dst, err)
	}
}
