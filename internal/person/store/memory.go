package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"demonym/internal/person/models"
	"demonym/internal/sentinel"
)

// ErrNotFound is returned when a person is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores persons in memory for tests and database-less deployments.
type InMemory struct {
	mu      sync.RWMutex
	persons map[uuid.UUID]*models.Person
}

// NewInMemory creates an in-memory person store.
func NewInMemory() *InMemory {
	return &InMemory{
		persons: make(map[uuid.UUID]*models.Person),
	}
}

// Create stores a new person record.
func (s *InMemory) Create(_ context.Context, p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.persons[p.ID] = &cp
	return nil
}

// FindByID retrieves a person by UUID.
func (s *InMemory) FindByID(_ context.Context, personID uuid.UUID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.persons[personID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

// List returns all persons ordered by creation time, newest first.
func (s *InMemory) List(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListByNationality returns persons whose stored code equals the given code.
// Comparison is against the raw stored string, matching column semantics.
func (s *InMemory) ListByNationality(_ context.Context, code string) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Person
	for _, p := range s.persons {
		if p.Nationality.EqualString(code) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
