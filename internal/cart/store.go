package cart

// Store is the session-scoped persistence behind a cart. Load returns a nil
// slice for a missing key.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// MemoryStore keeps cart payloads in a plain map. Used in tests and as a
// fallback when no session is available.
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	return s.values[key], nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.values[key] = data
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
