package stream

import (
	"fmt"
	"io"
	"os"
)

// Mode is the redirection state of a started Redirector.
type Mode int

const (
	// Real delivers writes to the stream's real target.
	Real Mode = iota
	// Buffered delivers writes to the redirector's private buffer.
	Buffered
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Buffered {
		return "buffered"
	}
	return "real"
}

// lifecycle phase of a Redirector. Transitions are one-way:
// created -> open -> closed.
type phase int

const (
	phaseCreated phase = iota
	phaseOpen
	phaseClosed
)

// Redirector owns redirection of a single standard stream between its
// real file and a private capture buffer.
//
// The real file is frozen at construction: whatever target was
// installed process-wide at that moment counts as "real" for the rest
// of the lifecycle, even if something else had already redirected the
// stream.
//
// Every operation validates the lifecycle phase and fails with
// ErrNotStarted, ErrAlreadyStarted or ErrFinished on misuse; nothing
// here is undefined behavior.
type Redirector struct {
	stream Stream
	slot   **os.File

	real *os.File
	buf  *Buffer
	mode Mode
	ph   phase

	// Live pipe feeding the buffer, nil while no pipe is installed.
	pw   *os.File
	done chan struct{}
}

// NewRedirector creates a Redirector for one of the two standard
// streams. It fails with ErrInvalidStream for any other identity.
func NewRedirector(s Stream) (*Redirector, error) {
	if !s.valid() {
		return nil, fmt.Errorf("stream %d: %w", int(s), ErrInvalidStream)
	}
	return newRedirector(s, s.slot()), nil
}

// newRedirector wires a Redirector to an explicit target slot. Tests
// use this to capture a private variable instead of the process-wide
// os.Stdout/os.Stderr.
func newRedirector(s Stream, slot **os.File) *Redirector {
	return &Redirector{
		stream: s,
		slot:   slot,
		// Freeze "real" as whatever target is installed right now,
		// even if something else had already redirected the stream.
		real: *slot,
		buf:  NewBuffer(),
	}
}

// Stream returns the identity this redirector was built for.
func (r *Redirector) Stream() Stream {
	return r.stream
}

// Mode returns the current redirection mode. Meaningful only between
// Start and Finish.
func (r *Redirector) Mode() Mode {
	return r.mode
}

// Start installs the capture buffer as the live target. After Start every
// write to the stream, process-wide, lands in the buffer until the
// redirector is suspended or finished.
func (r *Redirector) Start() error {
	switch r.ph {
	case phaseOpen:
		return fmt.Errorf("%s: %w", r.stream, ErrAlreadyStarted)
	case phaseClosed:
		return fmt.Errorf("%s: %w", r.stream, ErrFinished)
	}

	if err := r.installPipe(); err != nil {
		return err
	}
	r.mode = Buffered
	r.ph = phaseOpen
	return nil
}

// Finish restores the real target and releases the buffer. Terminal:
// every later operation fails with ErrFinished.
func (r *Redirector) Finish() error {
	if err := r.requireOpen(); err != nil {
		return err
	}

	*r.slot = r.real
	r.flushPipe()
	r.buf.Release()
	r.mode = Real
	r.ph = phaseClosed
	return nil
}

// Suspend restores the real target without releasing the buffer, so
// already-captured text survives until the next Snap. Suspending an
// already-suspended redirector is a no-op.
func (r *Redirector) Suspend() error {
	if err := r.requireOpen(); err != nil {
		return err
	}
	if r.mode == Real {
		return nil
	}

	*r.slot = r.real
	r.flushPipe()
	r.mode = Real
	return nil
}

// Resume re-installs the capture buffer as the live target. Inverse of
// Suspend; resuming an already-buffered redirector is a no-op.
func (r *Redirector) Resume() error {
	if err := r.requireOpen(); err != nil {
		return err
	}
	if r.mode == Buffered {
		return nil
	}

	if err := r.installPipe(); err != nil {
		return err
	}
	r.mode = Buffered
	return nil
}

// Snap drains the buffer: it returns all captured text and resets the
// buffer to empty, so consecutive snaps never repeat content. While
// buffered, the live pipe is flushed and replaced first so that every
// write issued before the snap is included.
func (r *Redirector) Snap() (string, error) {
	if err := r.requireOpen(); err != nil {
		return "", err
	}

	if r.mode == Buffered {
		r.flushPipe()
		text := r.buf.Drain()
		if err := r.installPipe(); err != nil {
			return text, err
		}
		return text, nil
	}
	return r.buf.Drain(), nil
}

// requireOpen validates that the redirector is between Start and
// Finish.
func (r *Redirector) requireOpen() error {
	switch r.ph {
	case phaseCreated:
		return fmt.Errorf("%s: %w", r.stream, ErrNotStarted)
	case phaseClosed:
		return fmt.Errorf("%s: %w", r.stream, ErrFinished)
	}
	return nil
}

// installPipe creates a fresh pipe, points the stream's slot at its
// write end and starts the copier goroutine feeding the buffer.
func (r *Redirector) installPipe() error {
	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%s: create capture pipe: %w", r.stream, err)
	}

	done := make(chan struct{})
	go func() {
		// Copy until the write end closes. Write errors mean the
		// buffer was released, in which case remaining bytes are
		// intentionally dropped.
		_, _ = io.Copy(r.buf, pr)
		_ = pr.Close()
		close(done)
	}()

	r.pw = pw
	r.done = done
	*r.slot = pw
	return nil
}

// flushPipe closes the live pipe's write end and waits for the copier
// to drain it, making all pending writes visible in the buffer. No-op
// when no pipe is installed.
func (r *Redirector) flushPipe() {
	if r.pw == nil {
		return
	}
	_ = r.pw.Close()
	<-r.done
	r.pw = nil
	r.done = nil
}
