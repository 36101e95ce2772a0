package repository

import (
	"context"
	"sync"
)

// Ключи хранения снимков
const (
	KeySiteContent      = "site_content"
	KeyRepairData       = "repair_data_v5"
	KeyRepairDataLegacy = "repair_data_v4"
	KeyAvailability     = "availability_data"
)

// KVStore - строковое key/value хранилище для JSON-снимков
type KVStore interface {
	// Get возвращает значение и false, если ключа нет
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV хранит значения в памяти процесса
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV создаёт хранилище в памяти
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
