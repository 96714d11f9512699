package application

import (
	"context"
	"errors"
	"sync"

	"resumedit/internal/ports"
)

// memStore is an in-memory KeyValueStore
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    int
	failPut error
	failDel error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return m.failPut
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDel != nil {
		return m.failDel
	}
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error {
	return nil
}

var errDiskFull = errors.New("disk full")
