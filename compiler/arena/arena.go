// Package arena provides the bump allocator that owns every AST node and
// copied string of a single compilation run.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

// DefaultAlignment matches the platform word size.
const DefaultAlignment = int(unsafe.Alignof(uintptr(0)))

// ErrExhausted is returned once the reserved block cannot satisfy a request.
var ErrExhausted = errors.New("arena exhausted")

// Arena is a monotonic allocator over one pre-reserved block. Nothing is
// ever freed individually; the whole block is dropped with the Arena.
type Arena struct {
	block []byte
	used  int
}

// New reserves a block of size bytes.
func New(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{block: make([]byte, size)}
}

// Reserve carves size bytes aligned to alignment out of the block and
// returns them. Alignment must be a power of two; zero means DefaultAlignment.
func (a *Arena) Reserve(size, alignment int) ([]byte, error) {
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	if alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("arena: alignment %d is not a power of two", alignment)
	}
	if size < 0 {
		return nil, fmt.Errorf("arena: negative size %d", size)
	}

	start := (a.used + alignment - 1) &^ (alignment - 1)
	end := start + size
	if end > len(a.block) {
		return nil, fmt.Errorf("reserving %d bytes (%d of %d used): %w", size, a.used, len(a.block), ErrExhausted)
	}
	a.used = end
	return a.block[start:end:end], nil
}

// CopyString copies s into the block. The returned string aliases arena
// memory, which is never written again once reserved.
func (a *Arena) CopyString(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	buf, err := a.Reserve(len(s), 1)
	if err != nil {
		return "", err
	}
	copy(buf, s)
	return unsafe.String(&buf[0], len(buf)), nil
}

// Used reports the number of bytes handed out so far, padding included.
func (a *Arena) Used() int { return a.used }

// Cap reports the size of the reserved block.
func (a *Arena) Cap() int { return len(a.block) }
