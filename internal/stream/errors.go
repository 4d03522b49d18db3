package stream

import "errors"

// Sentinel errors reported by Redirector and Pair. All of them signal
// caller precondition violations; none are transient.
var (
	// ErrInvalidStream indicates a Redirector was requested for a
	// stream outside {Stdout, Stderr}.
	ErrInvalidStream = errors.New("invalid stream identity")
	// ErrNotStarted indicates an operation that requires a started
	// redirector was called before Start.
	ErrNotStarted = errors.New("redirector not started")
	// ErrAlreadyStarted indicates Start was called twice on the same
	// redirector.
	ErrAlreadyStarted = errors.New("redirector already started")
	// ErrFinished indicates an operation was called after Finish
	// released the redirector's buffer.
	ErrFinished = errors.New("redirector already finished")
)
