// internal/record/region.go
package record

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Region is the reset-persistent storage behind a Record.
// Load fills p with whatever the region holds; content after power loss is
// undefined and is only trusted once the checksum matches.
type Region interface {
	Load(p []byte) error
	Store(p []byte) error
}

// MemoryRegion is a fixed in-process buffer.
// It outlives any Record opened on it, the way RTC user memory outlives a reset.
type MemoryRegion struct {
	mu  sync.Mutex
	buf [Size]byte
}

// NewMemoryRegion returns a zeroed region (power-on state).
func NewMemoryRegion() *MemoryRegion {
	return &MemoryRegion{}
}

func (m *MemoryRegion) Load(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(p, m.buf[:])
	return nil
}

func (m *MemoryRegion) Store(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(m.buf[:], p)
	return nil
}

// PowerLoss wipes the region.
func (m *MemoryRegion) PowerLoss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.buf[:])
}

// FileRegion keeps the record in a file of exactly Size bytes.
// Deleting the file is the host equivalent of power loss.
type FileRegion struct {
	path string
}

// NewFileRegion binds a region to path. Nothing is touched until Load.
func NewFileRegion(path string) (*FileRegion, error) {
	if path == "" {
		return nil, errors.New("record: file region path required")
	}
	return &FileRegion{path: path}, nil
}

// Load reads the file. A missing file or a file of another size
// (another build's layout) yields a zeroed buffer, which never validates.
func (f *FileRegion) Load(p []byte) error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		clear(p)
		return nil
	}
	if err != nil {
		return fmt.Errorf("file region %s: %w", f.path, err)
	}
	if len(data) != len(p) {
		clear(p)
		return nil
	}
	copy(p, data)
	return nil
}

func (f *FileRegion) Store(p []byte) error {
	if err := os.WriteFile(f.path, p, 0o600); err != nil {
		return fmt.Errorf("file region %s: %w", f.path, err)
	}
	return nil
}
