package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// File keeps the slot as a single file under dir, managed by diskv.
type File struct {
	d    *diskv.Diskv
	name string
}

func OpenFile(dir, name string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	d := diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return &File{d: d, name: name}, nil
}

func (f *File) Name() string { return f.name }

func (f *File) Read() ([]byte, error) {
	if !f.d.Has(f.name) {
		return nil, ErrNoSlot
	}
	return f.d.Read(f.name)
}

func (f *File) Write(data []byte) error {
	return f.d.Write(f.name, data)
}

func (f *File) Close() error { return nil }
