package fleet

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryStore is a mutex-guarded keyed store preserving insertion order.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	owner func(T) string
	id    func(T) string
}

func newMemoryStore[T any](owner, id func(T) string) *memoryStore[T] {
	return &memoryStore[T]{items: make(map[string]T), owner: owner, id: id}
}

func (s *memoryStore[T]) put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.id(v)
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = v
}

func (s *memoryStore[T]) get(ownerID, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	v, ok := s.items[id]
	if !ok || s.owner(v) != ownerID {
		return zero, false
	}
	return v, true
}

func (s *memoryStore[T]) listByOwner(ownerID string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for _, key := range s.order {
		if v := s.items[key]; s.owner(v) == ownerID {
			out = append(out, v)
		}
	}
	return out
}

func (s *memoryStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out
}

func (s *memoryStore[T]) delete(ownerID, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok || s.owner(v) != ownerID {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// MemoryTemplateRepository is the in-process TemplateRepository.
type MemoryTemplateRepository struct {
	store *memoryStore[ReportTemplate]
}

func NewMemoryTemplateRepository() *MemoryTemplateRepository {
	return &MemoryTemplateRepository{store: newMemoryStore(
		func(t ReportTemplate) string { return t.OwnerID },
		func(t ReportTemplate) string { return t.ID },
	)}
}

func (r *MemoryTemplateRepository) Create(_ context.Context, t ReportTemplate) error {
	r.store.put(t)
	return nil
}

func (r *MemoryTemplateRepository) Get(_ context.Context, ownerID, id string) (*ReportTemplate, error) {
	if t, ok := r.store.get(ownerID, id); ok {
		return &t, nil
	}
	return nil, nil
}

func (r *MemoryTemplateRepository) ListByOwner(_ context.Context, ownerID string) ([]ReportTemplate, error) {
	return r.store.listByOwner(ownerID), nil
}

func (r *MemoryTemplateRepository) Update(_ context.Context, t ReportTemplate) error {
	r.store.put(t)
	return nil
}

func (r *MemoryTemplateRepository) Delete(_ context.Context, ownerID, id string) error {
	if !r.store.delete(ownerID, id) {
		return ErrTemplateNotFound
	}
	return nil
}

// MemoryScheduleRepository is the in-process ScheduleRepository.
type MemoryScheduleRepository struct {
	store *memoryStore[ScheduledReport]
}

func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{store: newMemoryStore(
		func(s ScheduledReport) string { return s.OwnerID },
		func(s ScheduledReport) string { return s.ID },
	)}
}

func (r *MemoryScheduleRepository) Create(_ context.Context, s ScheduledReport) error {
	r.store.put(s)
	return nil
}

func (r *MemoryScheduleRepository) Get(_ context.Context, ownerID, id string) (*ScheduledReport, error) {
	if s, ok := r.store.get(ownerID, id); ok {
		return &s, nil
	}
	return nil, nil
}

func (r *MemoryScheduleRepository) ListByOwner(_ context.Context, ownerID string) ([]ScheduledReport, error) {
	return r.store.listByOwner(ownerID), nil
}

func (r *MemoryScheduleRepository) List(_ context.Context) ([]ScheduledReport, error) {
	return r.store.list(), nil
}

func (r *MemoryScheduleRepository) Update(_ context.Context, s ScheduledReport) error {
	r.store.put(s)
	return nil
}

func (r *MemoryScheduleRepository) Delete(_ context.Context, ownerID, id string) error {
	if !r.store.delete(ownerID, id) {
		return ErrScheduleNotFound
	}
	return nil
}

// MemoryExportRepository is the in-process ExportRepository.
type MemoryExportRepository struct {
	store *memoryStore[ExportedReport]
}

func NewMemoryExportRepository() *MemoryExportRepository {
	return &MemoryExportRepository{store: newMemoryStore(
		func(e ExportedReport) string { return e.OwnerID },
		func(e ExportedReport) string { return e.ID },
	)}
}

func (r *MemoryExportRepository) Create(_ context.Context, e ExportedReport) error {
	r.store.put(e)
	return nil
}

func (r *MemoryExportRepository) ListByOwner(_ context.Context, ownerID string, limit int) ([]ExportedReport, error) {
	entries := r.store.listByOwner(ownerID)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *MemoryExportRepository) CountSince(_ context.Context, ownerID string, since time.Time) (int, error) {
	count := 0
	for _, e := range r.store.listByOwner(ownerID) {
		if !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
