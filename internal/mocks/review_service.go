package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
)

type ReviewServiceInterface struct {
	mock.Mock
}

func NewReviewServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewServiceInterface {
	m := &ReviewServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReviewServiceInterface) Hydrate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *ReviewServiceInterface) Add(ctx context.Context, review domain.Review) (*domain.Review, error) {
	ret := _m.Called(ctx, review)

	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewServiceInterface) ListByRestaurant(restaurantID string) []domain.Review {
	ret := _m.Called(restaurantID)

	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	return r0
}
