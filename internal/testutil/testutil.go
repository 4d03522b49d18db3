// Package testutil provides testing utilities for capture tests.
package testutil

import (
	"os"
	"testing"
)

// StubStandardStreams replaces os.Stdout and os.Stderr with temp-file
// stand-ins for the duration of the test and restores the originals on
// cleanup. The returned functions read back everything that reached
// each stand-in, i.e. everything a capture session let through to the
// "real" streams.
//
// Tests that drive a real capture session use this so that suspended
// or post-session writes land somewhere inspectable instead of in the
// test runner's own output.
func StubStandardStreams(t *testing.T) (stdout, stderr func() string) {
	t.Helper()

	outFile := stubStream(t, &os.Stdout)
	errFile := stubStream(t, &os.Stderr)

	return readerFor(t, outFile), readerFor(t, errFile)
}

// stubStream swaps one standard stream for a temp file, restoring the
// original on test cleanup.
func stubStream(t *testing.T, slot **os.File) *os.File {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "stream-*")
	if err != nil {
		t.Fatalf("failed to create stream stand-in: %v", err)
	}

	original := *slot
	*slot = f
	t.Cleanup(func() {
		*slot = original
		_ = f.Close()
	})
	return f
}

// readerFor returns a function reading the full contents written to f.
func readerFor(t *testing.T, f *os.File) func() string {
	return func() string {
		t.Helper()

		data, err := os.ReadFile(f.Name())
		if err != nil {
			t.Fatalf("failed to read stream stand-in: %v", err)
		}
		return string(data)
	}
}
