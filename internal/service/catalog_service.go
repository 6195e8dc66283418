package service

import (
	"errors"

	"tastebite/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
)

// CatalogService is a read-only lookup over the restaurant/dish
// reference data. Nothing in the core ever mutates the catalog.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListRestaurants() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *CatalogService) GetRestaurant(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *CatalogService) ListDishes(restaurantID string) ([]domain.Dish, error) {
	return s.repo.ListDishes(restaurantID)
}

func (s *CatalogService) GetDish(dishID string) (*domain.Dish, error) {
	return s.repo.GetDish(dishID)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
