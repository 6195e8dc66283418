package mocks

import "github.com/stretchr/testify/mock"

type IDProvider struct {
	mock.Mock
}

func NewIDProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *IDProvider {
	m := &IDProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *IDProvider) OrderID() string {
	return _m.Called().String(0)
}

func (_m *IDProvider) ReviewID() string {
	return _m.Called().String(0)
}

func (_m *IDProvider) AddressID() string {
	return _m.Called().String(0)
}
