package stream

import "os"

// Pair drives a stdout/stderr Redirector pair as a single unit. Every
// operation applies to both redirectors, stdout first then stderr, so
// the two never end up in different modes.
type Pair struct {
	out *Redirector
	err *Redirector
}

// NewPair creates an unstarted redirector pair for the two standard
// streams.
func NewPair() (*Pair, error) {
	out, err := NewRedirector(Stdout)
	if err != nil {
		return nil, err
	}
	errRd, err := NewRedirector(Stderr)
	if err != nil {
		return nil, err
	}
	return &Pair{out: out, err: errRd}, nil
}

// newPair wires a pair to explicit target slots, for tests.
func newPair(outSlot, errSlot **os.File) *Pair {
	return &Pair{
		out: newRedirector(Stdout, outSlot),
		err: newRedirector(Stderr, errSlot),
	}
}

// Start begins buffering on both streams. If stderr fails to start
// after stdout already did, stdout is rolled back so the pair never
// stays half-redirected.
func (p *Pair) Start() error {
	if err := p.out.Start(); err != nil {
		return err
	}
	if err := p.err.Start(); err != nil {
		_ = p.out.Finish()
		return err
	}
	return nil
}

// Finish restores both streams and releases both buffers.
func (p *Pair) Finish() error {
	if err := p.out.Finish(); err != nil {
		return err
	}
	return p.err.Finish()
}

// Suspend restores both streams, keeping both buffers alive.
func (p *Pair) Suspend() error {
	if err := p.out.Suspend(); err != nil {
		return err
	}
	return p.err.Suspend()
}

// Resume re-installs both buffers as the live targets.
func (p *Pair) Resume() error {
	if err := p.out.Resume(); err != nil {
		return err
	}
	return p.err.Resume()
}

// Read drains both buffers and returns the captured text as an
// (stdout, stderr) pair. It is a compound drain: after Read both
// buffers are empty.
func (p *Pair) Read() (out, errText string, err error) {
	out, err = p.out.Snap()
	if err != nil {
		return "", "", err
	}
	errText, err = p.err.Snap()
	if err != nil {
		return "", "", err
	}
	return out, errText, nil
}
