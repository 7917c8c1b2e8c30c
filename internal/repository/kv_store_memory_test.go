package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVStoreRoundTrip(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "greeting", "hello"))

	value, found, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", value)
}

func TestMemoryKVStoreMissingKey(t *testing.T) {
	store := NewMemoryKVStore()

	value, found, err := store.Get(context.Background(), "never-written")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestMemoryKVStoreEmptyValue(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "blank", ""))

	value, found, err := store.Get(ctx, "blank")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, value)
}

func TestMemoryKVStoreOverwrite(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)
}

func TestMemoryKVStoreConcurrentWritersSameKey(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(ctx, "contested", fmt.Sprintf("writer-%d", i))
		}(i)
	}
	wg.Wait()

	value, found, err := store.Get(ctx, "contested")
	require.NoError(t, err)
	assert.True(t, found)
	// exactly one of the written values survives, never a torn mix
	assert.Regexp(t, `^writer-\d+$`, value)
}

func TestMemoryKVStoreConcurrentReadersAndWriters(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			_ = store.Set(ctx, key, fmt.Sprintf("value-%d", i))
		}(i)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			value, found, err := store.Get(ctx, key)
			assert.NoError(t, err)
			if found {
				assert.Equal(t, fmt.Sprintf("value-%d", i), value)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 32; i++ {
		value, found, err := store.Get(ctx, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, fmt.Sprintf("value-%d", i), value)
	}
}
