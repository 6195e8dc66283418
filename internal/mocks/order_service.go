package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) Hydrate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *OrderServiceInterface) PlaceOrder(ctx context.Context, items []domain.CartItem, restaurantName, paymentMethod, note string) (*domain.Order, error) {
	ret := _m.Called(ctx, items, restaurantName, paymentMethod, note)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) AdvanceStatus(ctx context.Context, orderID string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) CancelOrder(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, reason)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) List() []domain.Order {
	ret := _m.Called()

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0
}

func (_m *OrderServiceInterface) Get(orderID string) (*domain.Order, error) {
	ret := _m.Called(orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
