package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue(4)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, 3, q.Size())

	assert.Equal(t, "a", q.Dequeue())
	assert.Equal(t, []interface{}{"b", "c"}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())
	assert.Empty(t, q.ReadAllMessages())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue(1)

	require.NoError(t, q.Enqueue(1))
	assert.ErrorIs(t, q.Enqueue(2), ErrQueueFull)

	q.ClearQueue()
	assert.NoError(t, q.Enqueue(3))
}

func TestInMemoryQueue_DefaultSize(t *testing.T) {
	q := NewInMemoryQueue(0)
	for i := 0; i < QueueBufferSize; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.ErrorIs(t, q.Enqueue(-1), ErrQueueFull)
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewInMemoryQueue(100)

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				assert.NoError(t, q.Enqueue(i))
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.ReadAllMessages(), 100)
}
