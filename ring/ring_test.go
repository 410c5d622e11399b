package ring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funny-falcon/rawmem/ring"
)

const size = 4

type item struct {
	n int
}

func TestBuffer_pushPop(t *testing.T) {
	rb := ring.New[item](size)

	_, err := rb.Pop()
	assert.True(t, errors.Is(err, ring.ErrEmpty))

	require.NoError(t, rb.Push(item{0}))
	v, err := rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, item{0}, v)
	_, err = rb.Pop()
	assert.Equal(t, ring.ErrEmpty, err)

	for i := 0; i < size; i++ {
		require.NoError(t, rb.Push(item{i}))
	}
	assert.Equal(t, ring.ErrFull, rb.Push(item{5}))

	v, err = rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, item{0}, v)
	v, err = rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, item{1}, v)
}

func TestBuffer_fullThenPop(t *testing.T) {
	rb := ring.New[int](size)
	for i := 0; i < size; i++ {
		require.False(t, rb.Full())
		require.NoError(t, rb.Push(i))
	}
	assert.True(t, rb.Full())
	assert.Equal(t, size, rb.Len())

	v, err := rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.False(t, rb.Full())
}

func TestBuffer_failedPushKeepsState(t *testing.T) {
	rb := ring.New[int](size)
	for i := 0; i < size; i++ {
		require.NoError(t, rb.Push(i+10))
	}
	before := rb.String()
	for i := 0; i < 3; i++ {
		assert.Equal(t, ring.ErrFull, rb.Push(99))
	}
	assert.Equal(t, before, rb.String())
	for i := 0; i < size; i++ {
		v, err := rb.Pop()
		require.NoError(t, err)
		assert.Equal(t, i+10, v)
	}
	assert.True(t, rb.Empty())
}

func TestBuffer_wrapAround(t *testing.T) {
	rb := ring.New[int](size)
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for rb.Len() < 2 {
			require.NoError(t, rb.Push(next))
			next++
		}
		v, err := rb.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
		want++
	}
}

// The fullness test only looks at the two boundary slots, so an arc that
// wraps across them reads as full before every slot is taken.
func TestBuffer_fullHeuristicOnWrappedArc(t *testing.T) {
	rb := ring.New[int](size)
	for i := 0; i < size; i++ {
		require.NoError(t, rb.Push(i))
	}
	for i := 0; i < 3; i++ {
		_, err := rb.Pop()
		require.NoError(t, err)
	}
	require.NoError(t, rb.Push(4))

	assert.Equal(t, 2, rb.Len())
	assert.True(t, rb.Full())
	assert.Equal(t, ring.ErrFull, rb.Push(5))

	v, _ := rb.Pop()
	assert.Equal(t, 3, v)
	v, _ = rb.Pop()
	assert.Equal(t, 4, v)
	assert.True(t, rb.Empty())
}

func TestBuffer_peek(t *testing.T) {
	rb := ring.New[string](2)
	_, err := rb.Peek()
	assert.Equal(t, ring.ErrEmpty, err)

	require.NoError(t, rb.Push("a"))
	require.NoError(t, rb.Push("b"))
	v, err := rb.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, rb.Len())
	v, _ = rb.Pop()
	assert.Equal(t, "a", v)
}

func TestBuffer_sizeOne(t *testing.T) {
	rb := ring.New[int](1)
	assert.True(t, rb.Empty())
	require.NoError(t, rb.Push(7))
	assert.True(t, rb.Full())
	assert.Equal(t, ring.ErrFull, rb.Push(8))
	v, err := rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, rb.Empty())
}

func TestBuffer_badSize(t *testing.T) {
	assert.Panics(t, func() { ring.New[int](0) })
}

type counted struct {
	drops *int
}

func (c counted) Release() { *c.drops++ }

func TestBuffer_release(t *testing.T) {
	drops := 0
	rb := ring.New[counted](size)
	for i := 0; i < 3; i++ {
		require.NoError(t, rb.Push(counted{&drops}))
	}
	_, err := rb.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, drops)

	rb.Release()
	assert.Equal(t, 2, drops)
	assert.True(t, rb.Empty())
	assert.Equal(t, 0, rb.Len())
	assert.Equal(t, "ring.Buffer{len=0, cap=4, read=0, write=0}", rb.String())
}
