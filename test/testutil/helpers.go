// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestDataPath returns the absolute path of a file in test/testdata.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestData loads a file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// WriteTempFile writes the given lines to a file in a per-test temp directory
// and returns its path. Lines are joined with "\n".
func WriteTempFile(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}

// SequentialSeats is a seat randomizer that always picks the last free index.
// With a fresh seat pool it issues seats 1, 2, 3, ... and re-issues the most
// recently released seat first.
type SequentialSeats struct{}

// IntN returns n-1.
func (SequentialSeats) IntN(n int) int {
	return n - 1
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
