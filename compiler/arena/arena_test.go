package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveAlignment(t *testing.T) {
	a := New(64)

	b, err := a.Reserve(3, 1)
	require.NoError(t, err)
	assert.Len(t, b, 3)
	assert.Equal(t, 3, a.Used())

	b, err = a.Reserve(8, 8)
	require.NoError(t, err)
	assert.Len(t, b, 8)
	assert.Equal(t, 16, a.Used(), "second reservation should start on an 8 byte boundary")
}

func TestReserveRejectsBadAlignment(t *testing.T) {
	a := New(64)
	_, err := a.Reserve(4, 3)
	assert.Error(t, err)
	assert.Equal(t, 0, a.Used())
}

func TestReserveExhausted(t *testing.T) {
	a := New(16)

	_, err := a.Reserve(16, 1)
	require.NoError(t, err)

	_, err = a.Reserve(1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, 16, a.Used(), "failed reservation must not move the bump pointer")
}

func TestCopyString(t *testing.T) {
	a := New(32)
	src := []byte("hello")

	s, err := a.CopyString(string(src))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	src[0] = 'j'
	assert.Equal(t, "hello", s, "copied string must not alias the caller's buffer")

	empty, err := a.CopyString("")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
	assert.Equal(t, 5, a.Used())
}

func TestCopyStringExhausted(t *testing.T) {
	a := New(4)
	_, err := a.CopyString("too long")
	assert.ErrorIs(t, err, ErrExhausted)
}

type node struct {
	name string
	next *node
}

func TestSlabPointersStayValid(t *testing.T) {
	a := New(1 << 16)
	s := NewSlab[node](a)

	first, err := s.New()
	require.NoError(t, err)
	first.name = "first"

	var last *node
	for i := 0; i < slabChunk*3; i++ {
		last, err = s.New()
		require.NoError(t, err)
		last.next = first
	}

	assert.Equal(t, "first", first.name)
	assert.Same(t, first, last.next)
	assert.Equal(t, slabChunk*3+1, s.Len())
	assert.Greater(t, a.Used(), 0)
}

func TestSlabChargesArena(t *testing.T) {
	a := New(8)
	s := NewSlab[node](a)

	_, err := s.New()
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 0, s.Len())
}
