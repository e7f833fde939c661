package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walk returns the payloads between the sentinels, front to back, and checks
// that forward and backward links agree.
func walk[T any](t *testing.T, d *Deque[T]) []T {
	t.Helper()

	var out []T
	prev := d.head
	for n := d.head.next; n != d.tail; n = n.next {
		require.NotNil(t, n)
		require.False(t, n.sentinel, "sentinel found between head and tail")
		require.Same(t, prev, n.prev)
		out = append(out, n.value)
		prev = n
	}
	require.Same(t, prev, d.tail.prev)
	return out
}

func TestDeque_Sentinels(t *testing.T) {
	d := New[int]()

	assert.True(t, d.head.sentinel)
	assert.True(t, d.tail.sentinel)
	assert.Same(t, d.tail, d.head.next)
	assert.Same(t, d.head, d.tail.prev)
	assert.Empty(t, walk(t, d))

	d.Enqueue(2)
	d.Enqueue(1)
	d.Push(3)
	assert.Equal(t, []int{1, 2, 3}, walk(t, d))
	assert.Equal(t, 3, d.Len())

	for d.Len() > 0 {
		_, err := d.Pop()
		require.NoError(t, err)
	}
	assert.Same(t, d.tail, d.head.next)
	assert.Same(t, d.head, d.tail.prev)
}

func TestUnlink_ClearsLinks(t *testing.T) {
	d := New[string]()
	d.Push("x")
	n := d.tail.prev

	_, err := d.Pop()
	require.NoError(t, err)
	assert.Nil(t, n.next)
	assert.Nil(t, n.prev)
}
