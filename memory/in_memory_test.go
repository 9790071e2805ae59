package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreRecallOrdering(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Append("red apple", "A"))
	require.NoError(t, store.Append("blue apple", "B"))
	require.NoError(t, store.Append("car", "C"))

	got, err := store.Recall("red apple", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Answer)
	assert.Equal(t, "B", got[1].Answer)
}

func TestInMemoryStoreRecallCaseInsensitive(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Append("Red APPLE", "A"))

	got, err := store.Recall("red apple", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Answer)
}

func TestInMemoryStoreEmptyStore(t *testing.T) {
	store := NewInMemoryStore()
	got, err := store.Recall("anything", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryStoreLimit(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append("apple question", "answer"))
	}

	got, err := store.Recall("apple", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
