// Package memory holds an in-memory reference implementation of the
// event store. It backs the service in dev mode (no database configured)
// and the test suites. Identifiers are never reused after deletion.
package memory

import (
	"context"
	"sort"
	"sync"

	"eonet/internal/models"
	"eonet/internal/repository"
)

type Store struct {
	mu     sync.RWMutex
	events map[uint64]models.Event
	seq    uint64
}

var _ repository.EventRepository = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		events: make(map[uint64]models.Event),
	}
}

func (s *Store) FindAll(ctx context.Context) ([]models.Event, error) {
	return s.filter(func(models.Event) bool { return true }), nil
}

func (s *Store) FindByID(ctx context.Context, id uint64) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) FindByCategory(ctx context.Context, category models.Category) ([]models.Event, error) {
	return s.filter(func(e models.Event) bool { return e.Category == category }), nil
}

func (s *Store) FindByStatus(ctx context.Context, status models.Status) ([]models.Event, error) {
	return s.filter(func(e models.Event) bool { return e.Status == status }), nil
}

func (s *Store) FindByDate(ctx context.Context, date models.Date) ([]models.Event, error) {
	return s.filter(func(e models.Event) bool { return e.Date.Equal(date) }), nil
}

func (s *Store) FindByCategoryAndStatus(ctx context.Context, category models.Category, status models.Status) ([]models.Event, error) {
	return s.filter(func(e models.Event) bool {
		return e.Category == category && e.Status == status
	}), nil
}

func (s *Store) FindByDateBetween(ctx context.Context, start, end models.Date) ([]models.Event, error) {
	return s.filter(inRange(start, end)), nil
}

func (s *Store) FindByCategoryAndDateBetween(ctx context.Context, category models.Category, start, end models.Date) ([]models.Event, error) {
	between := inRange(start, end)
	return s.filter(func(e models.Event) bool {
		return e.Category == category && between(e)
	}), nil
}

func (s *Store) FindByStatusAndDateBetween(ctx context.Context, status models.Status, start, end models.Date) ([]models.Event, error) {
	between := inRange(start, end)
	return s.filter(func(e models.Event) bool {
		return e.Status == status && between(e)
	}), nil
}

func (s *Store) FindByCategoryAndStatusAndDateBetween(ctx context.Context, category models.Category, status models.Status, start, end models.Date) ([]models.Event, error) {
	between := inRange(start, end)
	return s.filter(func(e models.Event) bool {
		return e.Category == category && e.Status == status && between(e)
	}), nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.events)), nil
}

func (s *Store) CountByCategory(ctx context.Context, category models.Category) (int64, error) {
	return int64(len(s.filter(func(e models.Event) bool { return e.Category == category }))), nil
}

func (s *Store) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	return int64(len(s.filter(func(e models.Event) bool { return e.Status == status }))), nil
}

func (s *Store) CountByDateBetween(ctx context.Context, start, end models.Date) (int64, error) {
	return int64(len(s.filter(inRange(start, end)))), nil
}

func (s *Store) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.events[id]
	return ok, nil
}

func (s *Store) Save(ctx context.Context, event *models.Event) error {
	if event == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID == 0 {
		s.seq++
		event.ID = s.seq
	} else if _, ok := s.events[event.ID]; !ok {
		return repository.ErrNotFound
	}
	s.events[event.ID] = *event
	return nil
}

func (s *Store) DeleteByID(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *Store) filter(keep func(models.Event) bool) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// inRange is inclusive on both bounds; an inverted range matches nothing.
func inRange(start, end models.Date) func(models.Event) bool {
	return func(e models.Event) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	}
}
