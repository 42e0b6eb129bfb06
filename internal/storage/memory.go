package storage

import "sync"

// MemStore is the in-memory Store used by tests and by anything that wants
// a throwaway state.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: map[string][]byte{}}
}

func (s *MemStore) Read(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (s *MemStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(data))
	copy(b, data)
	s.blobs[key] = b
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// Has reports whether a key currently exists. Tests use it to tell
// "deleted" apart from "written empty".
func (s *MemStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.blobs[key]
	return ok
}
