package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type AccountServiceInterface struct {
	mock.Mock
}

func NewAccountServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountServiceInterface {
	m := &AccountServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccountServiceInterface) Hydrate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *AccountServiceInterface) Login(ctx context.Context, name, email string) (*domain.User, error) {
	ret := _m.Called(ctx, name, email)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AccountServiceInterface) Logout(ctx context.Context) {
	_m.Called(ctx)
}

func (_m *AccountServiceInterface) Current() *domain.User {
	ret := _m.Called()

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0
}
