package store

import (
	"context"
	"sync"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
)

type enrollmentKey struct {
	classID  id.ClassID
	personID id.PersonID
}

// InMemoryEnrollmentStore keeps enrollments keyed by their composite
// (class, person) identity. Re-creating an existing pair is a no-op, matching
// the composite primary key semantics of the SQL store.
type InMemoryEnrollmentStore struct {
	mu          sync.RWMutex
	enrollments map[enrollmentKey]models.Enrollment
}

func NewInMemoryEnrollmentStore() *InMemoryEnrollmentStore {
	return &InMemoryEnrollmentStore{enrollments: make(map[enrollmentKey]models.Enrollment)}
}

func (s *InMemoryEnrollmentStore) CreateBatch(_ context.Context, enrollments []models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range enrollments {
		s.enrollments[enrollmentKey{classID: e.ClassID, personID: e.PersonID}] = e
	}
	return nil
}

func (s *InMemoryEnrollmentStore) List(_ context.Context) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Enrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		out = append(out, e)
	}
	return out, nil
}

func (s *InMemoryEnrollmentStore) ListByPerson(_ context.Context, personID id.PersonID) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.PersonID == personID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *InMemoryEnrollmentStore) DeleteByPerson(_ context.Context, personID id.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.enrollments {
		if key.personID == personID {
			delete(s.enrollments, key)
		}
	}
	return nil
}

func (s *InMemoryEnrollmentStore) DeleteByClass(_ context.Context, classID id.ClassID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.enrollments {
		if key.classID == classID {
			delete(s.enrollments, key)
		}
	}
	return nil
}
