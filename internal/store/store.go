package store

import "sync"

// Storage keys, one per persisted collection or session record.
const (
	KeyProperties    = "dfontes_properties"
	KeyClients       = "dfontes_clients"
	KeyProposals     = "dfontes_proposals"
	KeyMessages      = "dfontes_messages"
	KeyStaffSession  = "dfontes_auth_session"
	KeyClientSession = "dfontes_client_session"
)

// Store is a namespaced string key/value store. Values are JSON documents;
// (de)serialization belongs to the caller. Implementations absorb nothing:
// callers decide how to degrade when a read fails or a value is corrupt.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryStore is a map-backed Store used in tests and as a fallback when no
// database path is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
