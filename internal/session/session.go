// Package session хранит состояние мастера регистрации для каждого пользователя.
package session

import "sync"

// State - шаг мастера регистрации, на котором находится пользователь.
type State int

const (
	StateNone State = iota
	StateAwaitingCheck
	StateAwaitingApproval
	StateAwaitingProfile
)

func (s State) String() string {
	switch s {
	case StateAwaitingCheck:
		return "awaiting_check"
	case StateAwaitingApproval:
		return "awaiting_approval"
	case StateAwaitingProfile:
		return "awaiting_profile"
	default:
		return "none"
	}
}

// Store - контракт хранилища сессий. Отсутствующая запись эквивалентна StateNone.
type Store interface {
	Get(userID int64) State
	Set(userID int64, state State)
	Clear(userID int64)
}

// MemoryStore держит сессии в памяти процесса. Записи не вытесняются:
// их количество ограничено числом живых участников турнира.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[int64]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int64]State)}
}

func (m *MemoryStore) Get(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[userID]
}

func (m *MemoryStore) Set(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = state
}

func (m *MemoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}
