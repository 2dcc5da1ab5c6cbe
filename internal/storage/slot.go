package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	DefaultSlot = "tasks"
	dbFileName  = "taskpad.db"
)

// ErrNoSlot is returned by Read when nothing has been written yet.
var ErrNoSlot = errors.New("slot not found")

// Slot is one named location holding the serialized task list. Writes
// replace the whole value.
type Slot interface {
	Name() string
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Open returns the slot for backend rooted at dir.
func Open(backend, dir, name string) (Slot, error) {
	if name == "" {
		name = DefaultSlot
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		if dir == "" {
			return nil, errors.New("store dir is empty")
		}
		return OpenFile(dir, name)
	case BackendSQLite:
		if dir == "" {
			return nil, errors.New("store dir is empty")
		}
		return OpenSQLite(filepath.Join(dir, dbFileName), name)
	case BackendMemory:
		return NewMemory(name), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
