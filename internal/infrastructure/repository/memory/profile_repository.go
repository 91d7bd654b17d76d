package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/profile"
)

type ProfileRepository struct {
	mu         sync.RWMutex
	athletes   map[string]profile.Athlete
	businesses map[string]profile.Business
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		athletes:   make(map[string]profile.Athlete),
		businesses: make(map[string]profile.Business),
	}
}

func (r *ProfileRepository) UpsertAthlete(_ context.Context, p profile.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.athletes[p.UserID] = p
	return nil
}

func (r *ProfileRepository) GetAthleteByUserID(_ context.Context, userID string) (profile.Athlete, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.athletes[userID]
	if !ok {
		return profile.Athlete{}, false, nil
	}

	return p, true, nil
}

func (r *ProfileRepository) UpsertBusiness(_ context.Context, p profile.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.businesses[p.UserID] = p
	return nil
}

func (r *ProfileRepository) GetBusinessByUserID(_ context.Context, userID string) (profile.Business, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.businesses[userID]
	if !ok {
		return profile.Business{}, false, nil
	}

	return p, true, nil
}
