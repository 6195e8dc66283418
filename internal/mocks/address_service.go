package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type AddressServiceInterface struct {
	mock.Mock
}

func NewAddressServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressServiceInterface {
	m := &AddressServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AddressServiceInterface) Hydrate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *AddressServiceInterface) List() []domain.Address {
	ret := _m.Called()

	var r0 []domain.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Address)
	}
	return r0
}

func (_m *AddressServiceInterface) Get(id string) (*domain.Address, error) {
	ret := _m.Called(id)

	var r0 *domain.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Address)
	}
	return r0, ret.Error(1)
}

func (_m *AddressServiceInterface) Default() *domain.Address {
	ret := _m.Called()

	var r0 *domain.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Address)
	}
	return r0
}

func (_m *AddressServiceInterface) Add(ctx context.Context, addr domain.Address) (*domain.Address, error) {
	ret := _m.Called(ctx, addr)

	var r0 *domain.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Address)
	}
	return r0, ret.Error(1)
}

func (_m *AddressServiceInterface) Update(ctx context.Context, id string, addr domain.Address) (*domain.Address, error) {
	ret := _m.Called(ctx, id, addr)

	var r0 *domain.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Address)
	}
	return r0, ret.Error(1)
}

func (_m *AddressServiceInterface) Delete(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}
