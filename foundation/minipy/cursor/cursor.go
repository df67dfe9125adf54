// File: cursor.go
// Title: Cached Rewindable Cursor
// Description: Generic buffered reader over a lazy element source. Elements
//              pulled from the source are appended to a cache so callers can
//              look ahead and rewind without touching the source again. The
//              lexer reads characters through it and the parser reads tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial cursor implementation

// Package cursor provides a cached, rewindable reader over a pull-based source.
package cursor

import (
	"bufio"
	"errors"
	"io"
	"iter"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
)

// EndOfText is the end sentinel of character cursors
const EndOfText rune = -1

// ErrUnderflow is returned when a rewind would move before the first element
var ErrUnderflow = errors.New("cursor underflow")

// Source yields the next element. io.EOF ends the stream; any other error
// ends it as well and is kept by the cursor.
type Source[T any] func() (T, error)

// Cursor reads elements of type T with lookahead and backtracking.
//
// The cache only ever grows and index stays within [0, len(cache)].
// Reading at index returns the cached element or pulls exactly one element
// from the source. Once the source is exhausted every further read appends
// the end sentinel without calling the source again.
type Cursor[T comparable] struct {
	source    Source[T]
	end       T
	cache     []T
	index     int
	exhausted bool
	err       error
}

// New creates a cursor over source that reports end once source is drained
func New[T comparable](source Source[T], end T) *Cursor[T] {
	return &Cursor[T]{source: source, end: end}
}

// FromSlice creates a cursor over a fixed slice of elements
func FromSlice[T comparable](items []T, end T) *Cursor[T] {
	next := 0
	return New(func() (T, error) {
		if next >= len(items) {
			var zero T
			return zero, io.EOF
		}
		item := items[next]
		next++
		return item, nil
	}, end)
}

// Runes creates a character cursor reading r sequentially
func Runes(r io.Reader) *Cursor[rune] {
	reader, ok := r.(io.RuneReader)
	if !ok {
		reader = bufio.NewReader(r)
	}

	return New(func() (rune, error) {
		ch, _, err := reader.ReadRune()
		if err != nil {
			return EndOfText, err
		}
		return ch, nil
	}, EndOfText)
}

// Take returns the element at the current position and advances by one
func (c *Cursor[T]) Take() T {
	var element T

	if c.index < len(c.cache) {
		element = c.cache[c.index]
	} else {
		element = c.pull()
		c.cache = append(c.cache, element)
	}

	c.index++
	return element
}

// TakeN performs n sequential takes
func (c *Cursor[T]) TakeN(n int) []T {
	elements := make([]T, 0, n)
	for i := 0; i < n; i++ {
		elements = append(elements, c.Take())
	}
	return elements
}

// Drop rewinds the position by `by` elements. The position is left
// unchanged when the rewind would underflow.
func (c *Cursor[T]) Drop(by int) error {
	if c.index-by < 0 {
		return mdwerror.Wrap(ErrUnderflow, "cursor index should not be negative").
			WithCode(mdwerror.CodeCursorUnderflow).
			WithOperation("cursor.Drop").
			WithDetail("position", c.index).
			WithDetail("by", by)
	}

	c.index -= by
	return nil
}

// Test tries each candidate in order. On the first one whose elements match
// the upcoming input it returns the candidate with the cursor advanced past
// it. When nothing matches the cursor is back at its entry position.
func (c *Cursor[T]) Test(candidates ...[]T) ([]T, bool) {
	start := c.index

	for _, candidate := range candidates {
		if c.matches(candidate) {
			return candidate, true
		}
		c.index = start
	}

	return nil, false
}

func (c *Cursor[T]) matches(candidate []T) bool {
	for _, want := range candidate {
		if c.Take() != want {
			return false
		}
	}
	return true
}

// All yields taken elements until the end sentinel is taken. Positions
// already visited stay rewindable after the sequence stops.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			element := c.Take()
			if element == c.end {
				return
			}
			if !yield(element) {
				return
			}
		}
	}
}

// Position returns the current index into the cache
func (c *Cursor[T]) Position() int {
	return c.index
}

// Len returns the number of cached elements
func (c *Cursor[T]) Len() int {
	return len(c.cache)
}

// End returns the end sentinel of this cursor
func (c *Cursor[T]) End() T {
	return c.end
}

// AtEnd reports whether e is the end sentinel
func (c *Cursor[T]) AtEnd(e T) bool {
	return e == c.end
}

// Err returns the first non-EOF error reported by the source
func (c *Cursor[T]) Err() error {
	return c.err
}

func (c *Cursor[T]) pull() T {
	if c.exhausted {
		return c.end
	}

	element, err := c.source()
	if err != nil {
		c.exhausted = true
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		return c.end
	}

	return element
}
