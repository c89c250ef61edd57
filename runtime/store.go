package runtime

import (
	"sync"
	"tagcast/domain"
)

// Store holds one Registry per chat, created empty on first reference.
// It only guards the chat map itself; each Registry carries its own lock,
// so operations on different chats never serialize on each other.
type Store struct {
	mu    sync.RWMutex
	chats map[domain.ChatID]*Registry
}

func NewStore() *Store {
	return &Store{chats: make(map[domain.ChatID]*Registry)}
}

// Chat returns the chat's registry, creating an empty one if needed.
func (s *Store) Chat(id domain.ChatID) *Registry {
	s.mu.RLock()
	registry, ok := s.chats[id]
	s.mu.RUnlock()
	if ok {
		return registry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: another goroutine may have created it between the locks.
	if registry, ok = s.chats[id]; ok {
		return registry
	}
	registry = NewRegistry()
	s.chats[id] = registry
	return registry
}

// Hydrate restores every persisted chat snapshot, replacing any state
// already held for those chats. Called once at process start.
func (s *Store) Hydrate(snapshots map[domain.ChatID]domain.Snapshot) {
	for chat, snapshot := range snapshots {
		s.Chat(chat).Restore(snapshot)
	}
}

// ChatIDs lists every chat currently holding a registry.
func (s *Store) ChatIDs() []domain.ChatID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatID, 0, len(s.chats))
	for id := range s.chats {
		out = append(out, id)
	}
	return out
}
