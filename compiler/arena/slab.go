package arena

import "unsafe"

const slabChunk = 64

// Slab hands out stable *T values for types the garbage collector must
// scan (AST nodes hold strings and interfaces, so they cannot live inside
// the raw byte block). Each allocation is still charged to the owning
// Arena so the block size bounds the whole tree.
type Slab[T any] struct {
	arena  *Arena
	chunks [][]T
}

// NewSlab binds a slab to a.
func NewSlab[T any](a *Arena) *Slab[T] {
	return &Slab[T]{arena: a}
}

// New returns a zeroed *T. Chunks are never reallocated, so earlier
// pointers stay valid.
func (s *Slab[T]) New() (*T, error) {
	var zero T
	if _, err := s.arena.Reserve(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))); err != nil {
		return nil, err
	}

	n := len(s.chunks)
	if n == 0 || len(s.chunks[n-1]) == cap(s.chunks[n-1]) {
		s.chunks = append(s.chunks, make([]T, 0, slabChunk))
		n++
	}
	last := append(s.chunks[n-1], zero)
	s.chunks[n-1] = last
	return &last[len(last)-1], nil
}

// Len reports how many values have been allocated.
func (s *Slab[T]) Len() int {
	total := 0
	for _, c := range s.chunks {
		total += len(c)
	}
	return total
}
