package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEvictsExpiredOnSave(t *testing.T) {
	m := NewMemoryStore().(*memoryStore)

	for i := 0; i < 1000; i++ {
		require.NoError(t, m.save(fmt.Sprintf("sess-%d", i), record{}, time.Nanosecond))
	}
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, m.save("fresh", record{}, time.Minute))

	m.mu.Lock()
	n := len(m.recs)
	m.mu.Unlock()
	assert.Equal(t, 1, n, "expired records should be gone after the next save")

	_, ok := m.load("fresh")
	assert.True(t, ok)
}

func TestMemoryStoreLoadExpired(t *testing.T) {
	m := NewMemoryStore().(*memoryStore)

	require.NoError(t, m.save("short", record{}, time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, ok := m.load("short")
	assert.False(t, ok)
}
