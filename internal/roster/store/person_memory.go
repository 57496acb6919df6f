package store

import (
	"context"
	"sync"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
)

// InMemoryPersonStore keeps people in a map. Safe for concurrent use.
type InMemoryPersonStore struct {
	mu     sync.RWMutex
	people map[id.PersonID]models.Person
}

func NewInMemoryPersonStore() *InMemoryPersonStore {
	return &InMemoryPersonStore{people: make(map[id.PersonID]models.Person)}
}

func (s *InMemoryPersonStore) Create(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[person.ID]; ok {
		return sentinel.ErrConflict
	}
	s.people[person.ID] = clonePerson(*person)
	return nil
}

func (s *InMemoryPersonStore) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.people[personID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := clonePerson(person)
	return &out, nil
}

func (s *InMemoryPersonStore) List(_ context.Context) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Person, 0, len(s.people))
	for _, person := range s.people {
		out = append(out, clonePerson(person))
	}
	return out, nil
}

func (s *InMemoryPersonStore) ListBySchool(_ context.Context, schoolID id.SchoolID) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Person
	for _, person := range s.people {
		if person.SchoolID == schoolID {
			out = append(out, clonePerson(person))
		}
	}
	return out, nil
}

func (s *InMemoryPersonStore) Update(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[person.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.people[person.ID] = clonePerson(*person)
	return nil
}

func (s *InMemoryPersonStore) Delete(_ context.Context, personID id.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[personID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.people, personID)
	return nil
}

// clonePerson copies the pointer fields so callers never share memory with
// the store.
func clonePerson(p models.Person) models.Person {
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		p.DateOfBirth = &dob
	}
	if p.YearGroup != nil {
		yg := *p.YearGroup
		p.YearGroup = &yg
	}
	return p
}
