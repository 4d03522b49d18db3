// Package stream implements redirection of the process's standard
// output streams into in-memory buffers.
//
// The primary components are Redirector, which owns redirection of a
// single stream (stdout or stderr) between its real file and a private
// drain buffer, and Pair, which drives a stdout/stderr Redirector pair
// in lockstep.
//
// # Redirection Mechanism
//
// os.Stdout and os.Stderr are *os.File values, so redirection works by
// reassigning the package-level variable. While a Redirector is in
// buffered mode it installs the write end of an os.Pipe and a copier
// goroutine drains the read end into the buffer. Every transition back
// to the real file flushes the pipe (closes the write end and waits
// for the copier to hit EOF), so reads of the buffer after a
// transition are deterministic.
//
// # Intended Use
//
// The package assumes a single capturing caller: it is the test
// harness, not the code under test, that starts, suspends, resumes and
// drains a Redirector. Nothing here isolates two concurrent captors;
// the underlying streams are process-wide singletons.
package stream
