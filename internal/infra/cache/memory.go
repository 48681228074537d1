package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

type memoryEntry struct {
	key       string
	days      []availability.DayColumn
	expiresAt time.Time
}

// Memory in-process кэш окон доступности с ограничением размера.
// При переполнении вытесняется самая старая запись.
// Возвращаемые значения разделяются между вызовами и не должны изменяться.
type Memory struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]*list.Element
	order      *list.List // от старых к новым
	now        func() time.Time
}

// NewMemory создает кэш. ttl <= 0 отключает истечение записей.
func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Memory{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]availability.DayColumn, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	entry := elem.Value.(*memoryEntry)
	if m.expired(entry) {
		m.remove(elem)
		return nil, false, nil
	}
	return entry.days, true, nil
}

func (m *Memory) Set(_ context.Context, key string, days []availability.DayColumn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = m.now().Add(m.ttl)
	}

	if elem, ok := m.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.days = days
		entry.expiresAt = expiresAt
		return nil
	}

	for m.order.Len() >= m.maxEntries {
		m.remove(m.order.Front())
	}

	m.entries[key] = m.order.PushBack(&memoryEntry{key: key, days: days, expiresAt: expiresAt})
	return nil
}

// Len количество записей, включая еще не удаленные просроченные
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memory) expired(entry *memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}

func (m *Memory) remove(elem *list.Element) {
	entry := m.order.Remove(elem).(*memoryEntry)
	delete(m.entries, entry.key)
}
