package property

import (
	"context"
	"fmt"
	"sync"
)

// Service owns the in-memory property list, loaded once on startup and
// reconciled after each successful gateway call.
type Service struct {
	repo Repository

	mu    sync.RWMutex
	cache []*Property
}

// NewService creates a property service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load replaces the in-memory list with the store's current state. The
// repository seeds the two default properties when the store is empty.
func (s *Service) Load(ctx context.Context) error {
	props, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	s.mu.Lock()
	s.cache = props
	s.mu.Unlock()
	return nil
}

// List returns a copy of the current property list.
func (s *Service) List() []*Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Property, len(s.cache))
	copy(out, s.cache)
	return out
}

// Get returns the cached property with the given id.
func (s *Service) Get(id string) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.cache {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPropertyNotFound
}

// Create persists a new named property and appends it to the list.
func (s *Service) Create(ctx context.Context, name string) (*Property, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.mu.Lock()
	s.cache = append(s.cache, p)
	s.mu.Unlock()
	return p, nil
}

// Rename changes a property's name in place.
func (s *Service) Rename(ctx context.Context, id, name string) (*Property, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if err := s.repo.Rename(ctx, id, name); err != nil {
		return nil, fmt.Errorf("failed to rename property: %w", err)
	}

	renamed := &Property{ID: id, Name: name}
	s.mu.Lock()
	for i, p := range s.cache {
		if p.ID == id {
			s.cache[i] = renamed
			break
		}
	}
	s.mu.Unlock()
	return renamed, nil
}
