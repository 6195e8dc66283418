package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"tastebite/internal/domain"
)

const reviewsStateKey = "reviews"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewService is an append-only registry of restaurant reviews,
// newest first.
type ReviewService struct {
	mu      sync.Mutex
	reviews []domain.Review
	store   StateStore
	ids     IDProvider
}

func NewReviewService(store StateStore, ids IDProvider) *ReviewService {
	return &ReviewService{store: store, ids: ids}
}

func (s *ReviewService) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx, reviewsStateKey)
	if errors.Is(err, ErrNoSavedState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.reviews)
}

func (s *ReviewService) Add(ctx context.Context, review domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.ids.ReviewID()
	review.CreatedAt = time.Now()
	s.reviews = append([]domain.Review{review}, s.reviews...)
	s.persistLocked(ctx)
	return &review, nil
}

func (s *ReviewService) ListByRestaurant(restaurantID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []domain.Review{}
	for _, review := range s.reviews {
		if review.RestaurantID == restaurantID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

func (s *ReviewService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.reviews)
	if err != nil {
		log.Printf("[reviews] marshal failed: %v", err)
		return
	}
	if err := s.store.Save(ctx, reviewsStateKey, data); err != nil {
		log.Printf("[reviews] persist failed: %v", err)
	}
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
