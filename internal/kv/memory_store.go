package kv

import "context"

// memoryStore keeps blobs in a plain map. It backs anonymous sessions
// and tests; nothing written here survives the process.
type memoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (m *memoryStore) Save(_ context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)
	m.data[key] = buf

	return nil
}

func (m *memoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}

	return value, true, nil
}
