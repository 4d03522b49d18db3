package stream

import "os"

// Stream identifies one of the two standard output streams a
// Redirector may capture. The identity is fixed at construction.
type Stream int

const (
	// Stdout is the process's normal output stream.
	Stdout Stream = iota + 1
	// Stderr is the process's diagnostic output stream.
	Stderr
)

// String returns the conventional name of the stream.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the two capturable streams.
func (s Stream) valid() bool {
	return s == Stdout || s == Stderr
}

// slot returns the address of the process-wide variable holding the
// stream's current target. All mutation of the globals is confined to
// the Redirector that owns the slot.
func (s Stream) slot() **os.File {
	switch s {
	case Stdout:
		return &os.Stdout
	default:
		return &os.Stderr
	}
}
