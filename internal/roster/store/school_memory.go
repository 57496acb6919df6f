// Package store provides the persistence implementations for the roster.
// Every entity has an in-memory store (mutex-guarded maps, used in tests and
// as the development default) and a PostgreSQL store (database/sql + lib/pq)
// satisfying the same consumer-side interfaces defined in the service
// package. Stores return sentinel errors; services translate them.
package store

import (
	"context"
	"sync"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
)

// InMemorySchoolStore keeps schools in a map. Safe for concurrent use.
type InMemorySchoolStore struct {
	mu      sync.RWMutex
	schools map[id.SchoolID]models.School
}

func NewInMemorySchoolStore() *InMemorySchoolStore {
	return &InMemorySchoolStore{schools: make(map[id.SchoolID]models.School)}
}

func (s *InMemorySchoolStore) Create(_ context.Context, school *models.School) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schools[school.ID]; ok {
		return sentinel.ErrConflict
	}
	s.schools[school.ID] = *school
	return nil
}

func (s *InMemorySchoolStore) FindByID(_ context.Context, schoolID id.SchoolID) (*models.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	school, ok := s.schools[schoolID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &school, nil
}

func (s *InMemorySchoolStore) List(_ context.Context) ([]models.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.School, 0, len(s.schools))
	for _, school := range s.schools {
		out = append(out, school)
	}
	return out, nil
}

func (s *InMemorySchoolStore) Update(_ context.Context, school *models.School) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schools[school.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.schools[school.ID] = *school
	return nil
}

func (s *InMemorySchoolStore) Delete(_ context.Context, schoolID id.SchoolID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schools[schoolID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.schools, schoolID)
	return nil
}

func (s *InMemorySchoolStore) Exists(_ context.Context, schoolID id.SchoolID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.schools[schoolID]
	return ok, nil
}
