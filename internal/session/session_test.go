package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	// Отсутствующая запись эквивалентна StateNone.
	assert.Equal(t, StateNone, store.Get(42))

	store.Set(42, StateAwaitingCheck)
	assert.Equal(t, StateAwaitingCheck, store.Get(42))

	store.Set(42, StateAwaitingApproval)
	assert.Equal(t, StateAwaitingApproval, store.Get(42))

	// Соседний пользователь не затронут.
	assert.Equal(t, StateNone, store.Get(43))

	store.Clear(42)
	assert.Equal(t, StateNone, store.Get(42))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Set(userID, StateAwaitingCheck)
			store.Get(userID)
			store.Clear(userID)
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		assert.Equal(t, StateNone, store.Get(int64(i)))
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "none", StateNone.String())
	assert.Equal(t, "awaiting_check", StateAwaitingCheck.String())
	assert.Equal(t, "awaiting_approval", StateAwaitingApproval.String())
	assert.Equal(t, "awaiting_profile", StateAwaitingProfile.String())
}
