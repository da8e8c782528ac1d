package locker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprintf("%q", value)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = fmt.Sprintf("%q", value)
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Lock Is Refused Until Unlock", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, "refresh", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		acquired, _, err = locker.TryLock(ctx, "refresh", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired, "lock should be held")

		require.NoError(t, locker.Unlock(ctx, "refresh", value))

		acquired, _, err = locker.TryLock(ctx, "refresh", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired, "lock should be free after unlock")
	})

	t.Run("Unlock With Foreign Value Fails", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		acquired, _, err := locker.TryLock(ctx, "refresh", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		assert.Error(t, locker.Unlock(ctx, "refresh", "someone-else"))
	})

	t.Run("Unlock Of Missing Key Is A No-op", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())
		assert.NoError(t, locker.Unlock(ctx, "missing", "value"))
	})
}
