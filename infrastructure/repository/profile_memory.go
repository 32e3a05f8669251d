package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// memoryProfileRepository guarda os perfis em memória, preservando a ordem de inserção
type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
	order    []string
}

func NewMemoryProfileRepository(seed ...*domain.Profile) ProfileRepository {
	repo := &memoryProfileRepository{
		profiles: make(map[string]*domain.Profile),
	}
	for _, profile := range seed {
		_ = repo.Upsert(profile)
	}
	return repo
}

func (r *memoryProfileRepository) FindOne(entityID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profiles[entityID].Clone(), nil
}

func (r *memoryProfileRepository) FindAll() ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*domain.Profile, 0, len(r.order))
	for _, entityID := range r.order {
		profiles = append(profiles, r.profiles[entityID].Clone())
	}
	return profiles, nil
}

func (r *memoryProfileRepository) FindOneByLastUpdated(period time.Time) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entityID := range r.order {
		profile := r.profiles[entityID]
		if profile.LastUpdated.Equal(period) {
			return profile.Clone(), nil
		}
	}
	return nil, nil
}

func (r *memoryProfileRepository) Upsert(profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.EntityID]; !exists {
		r.order = append(r.order, profile.EntityID)
	}
	r.profiles[profile.EntityID] = profile.Clone()
	return nil
}

func (r *memoryProfileRepository) Update(profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.EntityID]; !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile.EntityID)
	}
	r.profiles[profile.EntityID] = profile.Clone()
	return nil
}
