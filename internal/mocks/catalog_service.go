package mocks

import (
	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogServiceInterface) ListRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetRestaurant(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) ListDishes(restaurantID string) ([]domain.Dish, error) {
	ret := _m.Called(restaurantID)

	var r0 []domain.Dish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Dish)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetDish(dishID string) (*domain.Dish, error) {
	ret := _m.Called(dishID)

	var r0 *domain.Dish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dish)
	}
	return r0, ret.Error(1)
}
