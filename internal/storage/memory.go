package storage

import "sync"

// Memory is an in-process slot, mostly for tests.
type Memory struct {
	mu     sync.Mutex
	name   string
	data   []byte
	writes int
}

func NewMemory(name string) *Memory {
	if name == "" {
		name = DefaultSlot
	}
	return &Memory{name: name}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSlot
	}
	return append([]byte(nil), m.data...), nil
}

func (m *Memory) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.writes++
	return nil
}

// Writes reports how many times the slot was written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Close() error { return nil }
