// Package capture redirects the process's standard output streams
// into in-memory buffers so a caller, typically a test harness, can
// assert on what a block of code printed without that output reaching
// the real console.
//
// # Sessions and Scopes
//
// A Capture holds at most one active session. StartCapturing begins a
// session and redirects both stdout and stderr; StopCapturing ends it
// and restores the real streams. Within a session, SuspendCapture and
// ResumeCapture toggle between delivering writes to the buffers and to
// the real streams, and ReadCapture destructively drains both buffers.
//
// The primary entry point is Scoped, which brackets a unit of work:
//
//	cap, _ := capture.New()
//	_ = cap.StartCapturing()
//	defer func() { _ = cap.StopCapturing() }()
//
//	sink := map[string]string{}
//	err := cap.Scoped(sink, func() error {
//		fmt.Println("hello")
//		fmt.Fprintln(os.Stderr, "world")
//		return nil
//	})
//	// sink["out"] == "hello\n", sink["err"] == "world\n"
//
// Scoped resumes capture before the work runs and guarantees suspension
// on every exit path, including panics. If the work fails, the error
// propagates and nothing is recorded in the sink.
//
// # Reads Are Drains
//
// ReadCapture (and the drain at the end of a Scoped block) empties the
// buffers: two consecutive reads with no intervening writes yield the
// content once and then nothing.
//
// # Concurrency
//
// os.Stdout and os.Stderr are process-wide singletons, so only one
// session may exist at a time and concurrent captors cannot be
// isolated from one another. A mutex serializes the Capture API, but
// callers that write from multiple goroutines during a scope share the
// single installed buffer indiscriminately.
package capture
