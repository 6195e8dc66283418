package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type StateStore struct {
	mock.Mock
}

func NewStateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *StateStore {
	m := &StateStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StateStore) Load(ctx context.Context, key string) ([]byte, error) {
	ret := _m.Called(ctx, key)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *StateStore) Save(ctx context.Context, key string, data []byte) error {
	ret := _m.Called(ctx, key, data)
	return ret.Error(0)
}

func (_m *StateStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}
