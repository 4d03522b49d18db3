package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nevermoreT/io-capture/capture"
	"github.com/nevermoreT/io-capture/internal/testutil"
)

// TestCaptureRoundTrip drives a full session through the public API:
// start, one scoped capture mixing stdout and stderr, stop, then
// verifies the sink contents, the pass-through after stop, and the
// debug log left behind.
func TestCaptureRoundTrip(t *testing.T) {
	stdout, stderr := testutil.StubStandardStreams(t)
	logDir := t.TempDir()

	c, err := capture.New(capture.WithLogging(logDir, "debug"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.StartCapturing(); err != nil {
		t.Fatalf("StartCapturing failed: %v", err)
	}

	sink := map[string]string{}
	err = c.Scoped(sink, func() error {
		fmt.Println("hello")
		fmt.Println("world")
		fmt.Fprintf(os.Stderr, "hello world again\n")
		return nil
	})
	if err != nil {
		t.Fatalf("Scoped failed: %v", err)
	}
	if err := c.StopCapturing(); err != nil {
		t.Fatalf("StopCapturing failed: %v", err)
	}

	if sink[capture.SinkOut] != "hello\nworld\n" {
		t.Errorf("sink out = %q, expected %q", sink[capture.SinkOut], "hello\nworld\n")
	}
	if sink[capture.SinkErr] != "hello world again\n" {
		t.Errorf("sink err = %q, expected %q", sink[capture.SinkErr], "hello world again\n")
	}

	// The session is over: echoing the sink reaches the real streams.
	fmt.Print(sink[capture.SinkOut])
	fmt.Fprint(os.Stderr, sink[capture.SinkErr])
	if stdout() != "hello\nworld\n" {
		t.Errorf("real stdout = %q, expected the echoed sink", stdout())
	}
	if stderr() != "hello world again\n" {
		t.Errorf("real stderr = %q, expected the echoed sink", stderr())
	}

	// Lifecycle events were logged.
	data, err := os.ReadFile(filepath.Join(logDir, "debug.log"))
	if err != nil {
		t.Fatalf("failed to read debug log: %v", err)
	}
	for _, msg := range []string{"capture session started", "capture drained", "capture session stopped"} {
		if !strings.Contains(string(data), msg) {
			t.Errorf("debug log missing %q", msg)
		}
	}
}
