package capture

import (
	"errors"

	"github.com/nevermoreT/io-capture/internal/stream"
)

// Session-level sentinel errors. All of them signal caller
// precondition violations surfaced fail-fast; none are transient.
var (
	// ErrAlreadyCapturing indicates StartCapturing was called while a
	// session is active.
	ErrAlreadyCapturing = errors.New("capture session already active")
	// ErrNoActiveSession indicates ReadCapture was called with no
	// active session.
	ErrNoActiveSession = errors.New("no active capture session")
	// ErrNilSink indicates Scoped was called with a nil sink map.
	ErrNilSink = errors.New("scoped capture sink is nil")
)

// Stream-level sentinel errors, re-exported so callers can match them
// without importing an internal package.
var (
	// ErrInvalidStream indicates a redirector was requested for a
	// stream other than stdout or stderr.
	ErrInvalidStream = stream.ErrInvalidStream
	// ErrNotStarted indicates a stream operation ran before the
	// redirector was started.
	ErrNotStarted = stream.ErrNotStarted
	// ErrFinished indicates a stream operation ran after the
	// redirector released its buffer.
	ErrFinished = stream.ErrFinished
)
