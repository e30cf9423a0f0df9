package repository

import (
	"context"
	"sync"

	"golang-stock-insight/internal/entity"
)

// memoryJournalRepository is an in-memory JournalRepository. It preserves
// insertion order and is safe for concurrent use. Used by tests and as a
// persistence-free fallback.
type memoryJournalRepository struct {
	mu      sync.RWMutex
	entries map[string]*entity.JournalEntry
	order   []string
}

// NewMemoryJournalRepository creates an empty in-memory journal repository.
func NewMemoryJournalRepository() JournalRepository {
	return &memoryJournalRepository{
		entries: make(map[string]*entity.JournalEntry),
	}
}

func (r *memoryJournalRepository) Create(_ context.Context, entry *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	r.entries[entry.ID] = &cp
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *memoryJournalRepository) FindByID(_ context.Context, id string) (*entity.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *memoryJournalRepository) FindAll(_ context.Context) ([]entity.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.JournalEntry, 0, len(r.order))
	for _, id := range r.order {
		if entry, ok := r.entries[id]; ok {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *memoryJournalRepository) Update(_ context.Context, entry *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return ErrNotFound
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *memoryJournalRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
