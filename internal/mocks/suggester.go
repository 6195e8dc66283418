package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastebite/internal/suggest"
)

type Suggester struct {
	mock.Mock
}

func NewSuggester(t interface {
	mock.TestingT
	Cleanup(func())
}) *Suggester {
	m := &Suggester{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Suggester) DishSummary(ctx context.Context, name, description string) string {
	return _m.Called(ctx, name, description).String(0)
}

func (_m *Suggester) Reviews(ctx context.Context, restaurantName string, reviews []suggest.ReviewInput) suggest.ReviewSummary {
	return _m.Called(ctx, restaurantName, reviews).Get(0).(suggest.ReviewSummary)
}

func (_m *Suggester) OrderNotes(ctx context.Context, dishNames []string) []string {
	ret := _m.Called(ctx, dishNames)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

func (_m *Suggester) TasteProfile(ctx context.Context, orderedDishes []string) string {
	return _m.Called(ctx, orderedDishes).String(0)
}

func (_m *Suggester) PersonalizedPick(ctx context.Context, favoriteNames []string, all []suggest.RestaurantInfo) *suggest.Pick {
	ret := _m.Called(ctx, favoriteNames, all)

	var r0 *suggest.Pick
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*suggest.Pick)
	}
	return r0
}
