package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
)

const favoritesStateKey = "favorites"

// FavoriteService is a toggle set of restaurant ids. Persisted as a
// plain string array to keep the saved shape stable.
type FavoriteService struct {
	mu    sync.Mutex
	ids   []string
	store StateStore
}

func NewFavoriteService(store StateStore) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx, favoritesStateKey)
	if errors.Is(err, ErrNoSavedState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.ids)
}

// Toggle flips the favorite state of the restaurant and reports whether
// it is a favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, restaurantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.ids {
		if id == restaurantID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.persistLocked(ctx)
			return false
		}
	}

	s.ids = append(s.ids, restaurantID)
	s.persistLocked(ctx)
	return true
}

func (s *FavoriteService) IsFavorite(restaurantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.ids {
		if id == restaurantID {
			return true
		}
	}
	return false
}

func (s *FavoriteService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

func (s *FavoriteService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.ids)
	if err != nil {
		log.Printf("[favorites] marshal failed: %v", err)
		return
	}
	if err := s.store.Save(ctx, favoritesStateKey, data); err != nil {
		log.Printf("[favorites] persist failed: %v", err)
	}
}

var _ FavoriteServiceInterface = (*FavoriteService)(nil)
