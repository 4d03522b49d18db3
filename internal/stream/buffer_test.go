package stream

import (
	"errors"
	"testing"
)

func TestBuffer_WriteAndDrain(t *testing.T) {
	tests := []struct {
		name     string
		writes   []string
		expected string
	}{
		{
			name:     "empty buffer drains empty",
			writes:   nil,
			expected: "",
		},
		{
			name:     "single write",
			writes:   []string{"hello\n"},
			expected: "hello\n",
		},
		{
			name:     "multiple writes concatenate verbatim",
			writes:   []string{"he", "llo ", "world"},
			expected: "hello world",
		},
		{
			name:     "newlines preserved",
			writes:   []string{"a\n", "b\n"},
			expected: "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			for _, w := range tt.writes {
				n, err := b.Write([]byte(w))
				if err != nil {
					t.Fatalf("Write returned error: %v", err)
				}
				if n != len(w) {
					t.Errorf("Write returned %d, expected %d", n, len(w))
				}
			}
			if got := b.Drain(); got != tt.expected {
				t.Errorf("Drain() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBuffer_DrainIsDestructive(t *testing.T) {
	b := NewBuffer()
	if _, err := b.Write([]byte("content")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if got := b.Drain(); got != "content" {
		t.Errorf("first Drain() = %q, expected %q", got, "content")
	}
	if got := b.Drain(); got != "" {
		t.Errorf("second Drain() = %q, expected empty", got)
	}
}

func TestBuffer_WritesAfterDrainDoNotInterleave(t *testing.T) {
	b := NewBuffer()
	_, _ = b.Write([]byte("first"))
	b.Drain()

	if _, err := b.Write([]byte("second")); err != nil {
		t.Fatalf("Write after drain failed: %v", err)
	}
	if got := b.Drain(); got != "second" {
		t.Errorf("Drain() after reset = %q, expected %q", got, "second")
	}
}

func TestBuffer_Len(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got length %d", b.Len())
	}

	_, _ = b.Write([]byte("12345"))
	if b.Len() != 5 {
		t.Errorf("expected length 5, got %d", b.Len())
	}

	b.Drain()
	if b.Len() != 0 {
		t.Errorf("expected empty buffer after drain, got length %d", b.Len())
	}
}

func TestBuffer_WriteAfterRelease(t *testing.T) {
	b := NewBuffer()
	_, _ = b.Write([]byte("gone"))
	b.Release()

	_, err := b.Write([]byte("late"))
	if !errors.Is(err, ErrFinished) {
		t.Errorf("Write after Release returned %v, expected ErrFinished", err)
	}
}
