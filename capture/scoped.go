package capture

// SinkOut and SinkErr are the keys Scoped populates in its sink.
const (
	SinkOut = "out"
	SinkErr = "err"
)

// Scoped brackets a unit of work with capture: it resumes capture,
// runs fn, suspends capture, then drains both buffers into sink under
// the keys "out" and "err".
//
// Suspension is guaranteed on every exit path — normal return, error
// or panic — so the real streams are always restored. The drain runs
// only when fn succeeds: if fn returns an error, that error propagates
// and nothing is recorded in the sink.
//
// With no active session fn still runs (uncaptured, resume and suspend
// being no-ops) and Scoped fails with ErrNoActiveSession at the drain.
func (c *Capture) Scoped(sink map[string]string, fn func() error) error {
	if sink == nil {
		return ErrNilSink
	}

	if err := c.ResumeCapture(); err != nil {
		return err
	}

	var fnErr error
	func() {
		defer func() {
			// Runs even when fn panics; the panic continues to
			// propagate after the streams are restored.
			_ = c.SuspendCapture()
		}()
		fnErr = fn()
	}()
	if fnErr != nil {
		return fnErr
	}

	out, errText, err := c.ReadCapture()
	if err != nil {
		return err
	}
	sink[SinkOut] = out
	sink[SinkErr] = errText
	return nil
}
