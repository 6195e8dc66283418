package mocks

import (
	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartServiceInterface) AddToCart(dish domain.Dish, restaurantID string) {
	_m.Called(dish, restaurantID)
}

func (_m *CartServiceInterface) UpdateQuantity(dishID string, delta int) {
	_m.Called(dishID, delta)
}

func (_m *CartServiceInterface) RemoveFromCart(dishID string) {
	_m.Called(dishID)
}

func (_m *CartServiceInterface) Clear() {
	_m.Called()
}

func (_m *CartServiceInterface) Items() []domain.CartItem {
	ret := _m.Called()

	var r0 []domain.CartItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CartItem)
	}
	return r0
}

func (_m *CartServiceInterface) Subtotal() float64 {
	return _m.Called().Get(0).(float64)
}

func (_m *CartServiceInterface) RestaurantID() string {
	return _m.Called().String(0)
}
