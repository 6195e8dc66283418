package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type FavoriteServiceInterface struct {
	mock.Mock
}

func NewFavoriteServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteServiceInterface {
	m := &FavoriteServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FavoriteServiceInterface) Hydrate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *FavoriteServiceInterface) Toggle(ctx context.Context, restaurantID string) bool {
	return _m.Called(ctx, restaurantID).Bool(0)
}

func (_m *FavoriteServiceInterface) IsFavorite(restaurantID string) bool {
	return _m.Called(restaurantID).Bool(0)
}

func (_m *FavoriteServiceInterface) List() []string {
	ret := _m.Called()

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}
