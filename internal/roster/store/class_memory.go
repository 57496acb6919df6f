package store

import (
	"context"
	"sync"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
)

// InMemoryClassStore keeps classes in a map. Safe for concurrent use.
type InMemoryClassStore struct {
	mu      sync.RWMutex
	classes map[id.ClassID]models.Class
}

func NewInMemoryClassStore() *InMemoryClassStore {
	return &InMemoryClassStore{classes: make(map[id.ClassID]models.Class)}
}

func (s *InMemoryClassStore) Create(_ context.Context, class *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classes[class.ID]; ok {
		return sentinel.ErrConflict
	}
	s.classes[class.ID] = *class
	return nil
}

func (s *InMemoryClassStore) FindByID(_ context.Context, classID id.ClassID) (*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	class, ok := s.classes[classID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &class, nil
}

// FindByIDs returns the classes whose ids are present in the store, in the
// order requested. Ids with no match are dropped, not reported.
func (s *InMemoryClassStore) FindByIDs(_ context.Context, classIDs []id.ClassID) ([]models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Class, 0, len(classIDs))
	for _, classID := range classIDs {
		if class, ok := s.classes[classID]; ok {
			out = append(out, class)
		}
	}
	return out, nil
}

func (s *InMemoryClassStore) List(_ context.Context) ([]models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Class, 0, len(s.classes))
	for _, class := range s.classes {
		out = append(out, class)
	}
	return out, nil
}

func (s *InMemoryClassStore) Update(_ context.Context, class *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classes[class.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.classes[class.ID] = *class
	return nil
}

func (s *InMemoryClassStore) Delete(_ context.Context, classID id.ClassID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classes[classID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.classes, classID)
	return nil
}
