package capture

import (
	"fmt"
	"sync"

	"github.com/nevermoreT/io-capture/internal/logging"
	"github.com/nevermoreT/io-capture/internal/stream"
)

// Capture is the session facade. It holds at most one active
// stdout/stderr redirector pair and enforces the single-session
// invariant. Construct one explicitly with New and thread it through;
// there is no hidden package-level instance.
//
// The zero session state is INACTIVE. StartCapturing moves to
// CAPTURING with both streams buffered; SuspendCapture and
// ResumeCapture toggle the buffered sub-state; StopCapturing returns
// to INACTIVE from either sub-state.
type Capture struct {
	mu   sync.Mutex
	pair *stream.Pair
	log  *logging.Logger
}

// Option configures a Capture.
type Option func(*Capture) error

// WithLogging enables debug logging of session lifecycle events to
// {dir}/debug.log at the given level. By default nothing is logged:
// the library must not write to the very streams it captures.
func WithLogging(dir, level string) Option {
	return func(c *Capture) error {
		logger, err := logging.NewLogger(dir, level)
		if err != nil {
			return fmt.Errorf("configure capture logging: %w", err)
		}
		c.log = logger
		return nil
	}
}

// New creates an inactive Capture.
func New(opts ...Option) (*Capture, error) {
	c := &Capture{log: logging.NopLogger()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// StartCapturing begins a session: it constructs a redirector pair for
// stdout and stderr and starts buffering on both. Capturing is on by
// default after this call — output produced before any scope begins is
// already being captured.
//
// Fails with ErrAlreadyCapturing if a session is active.
func (c *Capture) StartCapturing() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pair != nil {
		return ErrAlreadyCapturing
	}

	pair, err := stream.NewPair()
	if err != nil {
		return err
	}
	if err := pair.Start(); err != nil {
		return err
	}
	c.pair = pair
	c.log.Debug("capture session started")
	return nil
}

// StopCapturing ends the session: both real streams are restored and
// both buffers released. Unlike StartCapturing it is tolerant — with
// no active session it is a no-op.
func (c *Capture) StopCapturing() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pair == nil {
		return nil
	}

	err := c.pair.Finish()
	c.pair = nil
	c.log.Debug("capture session stopped")
	return err
}

// ResumeCapture re-installs the buffers as the live stream targets.
// No-op with no active session.
func (c *Capture) ResumeCapture() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pair == nil {
		return nil
	}
	c.log.Debug("capture resumed")
	return c.pair.Resume()
}

// SuspendCapture restores the real streams without dropping buffered
// text. No-op with no active session, symmetric with ResumeCapture.
func (c *Capture) SuspendCapture() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pair == nil {
		return nil
	}
	c.log.Debug("capture suspended")
	return c.pair.Suspend()
}

// ReadCapture destructively drains both buffers and returns the
// captured (stdout, stderr) text. After it returns, both buffers are
// empty.
//
// Fails with ErrNoActiveSession if no session is active.
func (c *Capture) ReadCapture() (out, errText string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pair == nil {
		return "", "", ErrNoActiveSession
	}

	out, errText, err = c.pair.Read()
	if err != nil {
		return "", "", err
	}
	c.log.Debug("capture drained", "out_bytes", len(out), "err_bytes", len(errText))
	return out, errText, nil
}

// Active reports whether a capture session is currently in progress.
func (c *Capture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pair != nil
}
