package stream

import (
	"bytes"
	"sync"
)

// Buffer is a drainable capture buffer for a single stream.
//
// It implements io.Writer for the copier goroutine feeding it from the
// pipe, and Drain for the capturing caller. Drain is destructive: it
// returns everything accumulated since the previous Drain and resets
// the buffer, so two consecutive drains with no intervening writes
// yield the content once and then nothing.
//
// All methods are safe for concurrent use; the copier goroutine writes
// while the capturing caller drains.
type Buffer struct {
	mu       sync.Mutex
	data     bytes.Buffer
	released bool
}

// NewBuffer creates an empty capture buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the buffer, implementing io.Writer.
// It fails with ErrFinished once the buffer has been released.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return 0, ErrFinished
	}
	return b.data.Write(p)
}

// Drain returns the full buffered text and resets the buffer to empty.
// Subsequent writes start from a clean buffer and never interleave
// with already-drained text.
func (b *Buffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.data.String()
	b.data.Reset()
	return text
}

// Len returns the number of buffered bytes not yet drained.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.data.Len()
}

// Release discards the buffer's contents and marks it unusable.
// Further writes fail with ErrFinished.
func (b *Buffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data.Reset()
	b.released = true
}
