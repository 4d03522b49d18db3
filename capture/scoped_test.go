package capture

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/nevermoreT/io-capture/internal/testutil"
)

func TestScoped_HelloWorld(t *testing.T) {
	stdout, _ := testutil.StubStandardStreams(t)

	c, _ := New()
	if err := c.StartCapturing(); err != nil {
		t.Fatalf("StartCapturing failed: %v", err)
	}

	sink := map[string]string{}
	err := c.Scoped(sink, func() error {
		fmt.Print("hello\n")
		fmt.Fprint(os.Stderr, "world\n")
		return nil
	})
	if err != nil {
		t.Fatalf("Scoped failed: %v", err)
	}

	if sink[SinkOut] != "hello\n" {
		t.Errorf("sink[%q] = %q, expected %q", SinkOut, sink[SinkOut], "hello\n")
	}
	if sink[SinkErr] != "world\n" {
		t.Errorf("sink[%q] = %q, expected %q", SinkErr, sink[SinkErr], "world\n")
	}

	if err := c.StopCapturing(); err != nil {
		t.Fatalf("StopCapturing failed: %v", err)
	}
	if stdout() != "" {
		t.Errorf("real stdout = %q, expected nothing captured to leak", stdout())
	}
}

func TestScoped_SequentialScopesDoNotCarryOver(t *testing.T) {
	testutil.StubStandardStreams(t)

	c, _ := New()
	if err := c.StartCapturing(); err != nil {
		t.Fatalf("StartCapturing failed: %v", err)
	}
	defer func() { _ = c.StopCapturing() }()

	first := map[string]string{}
	if err := c.Scoped(first, func() error {
		fmt.Print("A")
		return nil
	}); err != nil {
		t.Fatalf("first Scoped failed: %v", err)
	}

	second := map[string]string{}
	if err := c.Scoped(second, func() error {
		fmt.Print("B")
		return nil
	}); err != nil {
		t.Fatalf("second Scoped failed: %v", err)
	}

	if first[SinkOut] != "A" {
		t.Errorf("first sink out = %q, expected %q", first[SinkOut], "A")
	}
	if second[SinkOut] != "B" {
		t.Errorf("second sink out = %q, expected %q", second[SinkOut], "B")
	}
}

func TestScoped_WorkFailurePropagatesWithoutRecording(t *testing.T) {
	stdout, _ := testutil.StubStandardStreams(t)

	c, _ := New()
	if err := c.StartCapturing(); err != nil {
		t.Fatalf("StartCapturing failed: %v", err)
	}
	defer func() { _ = c.StopCapturing() }()

	boom := errors.New("unit of work failed")
	sink := map[string]string{}
	err := c.Scoped(sink, func() error {
		fmt.Print("partial output")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Scoped returned %v, expected the work's own error", err)
	}

	if len(sink) != 0 {
		t.Errorf("sink = %v, expected nothing recorded on failure", sink)
	}

	// Suspend still ran: writes after the failed scope reach the real
	// stream, not the buffer.
	fmt.Print("after failed scope")
	if stdout() != "after failed scope" {
		t.Errorf("real stdout = %q, expected %q", stdout(), "after failed scope")
	}
}

func TestScoped_SuspendsOnPanic(t *testing.T) {
	stdout, _ := testutil.StubStandardStreams(t)

	c, _ := New()
	if err := c.StartCapturing(); err != nil {
		t.Fatalf("StartCapturing failed: %v", err)
	}
	defer func() { _ = c.StopCapturing() }()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to propagate out of Scoped")
			}
		}()
		_ = c.Scoped(map[string]string{}, func() error {
			panic("work unit exploded")
		})
	}()

	fmt.Print("restored")
	if stdout() != "restored" {
		t.Errorf("real stdout = %q, expected %q after panic recovery", stdout(), "restored")
	}
}

func TestScoped_NilSink(t *testing.T) {
	c, _ := New()

	err := c.Scoped(nil, func() error { return nil })
	if !errors.Is(err, ErrNilSink) {
		t.Errorf("Scoped(nil, ...) returned %v, expected ErrNilSink", err)
	}
}

func TestScoped_NoActiveSession(t *testing.T) {
	stdout, _ := testutil.StubStandardStreams(t)

	c, _ := New()

	ran := false
	err := c.Scoped(map[string]string{}, func() error {
		ran = true
		fmt.Print("uncaptured")
		return nil
	})
	if !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Scoped without session returned %v, expected ErrNoActiveSession", err)
	}
	if !ran {
		t.Error("work unit did not run")
	}
	if stdout() != "uncaptured" {
		t.Errorf("real stdout = %q, expected %q", stdout(), "uncaptured")
	}
}
