package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkuspot/spotbot/internal/domain"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get(1)
	assert.False(t, ok)

	sess := domain.NewSession("en")
	store.Put(1, sess)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Same(t, sess, got)

	store.Delete(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.Put(id, domain.NewSession("en"))
			store.Get(id)
			store.Delete(id)
		}(i)
	}
	wg.Wait()
}
