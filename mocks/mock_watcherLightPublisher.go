package mocks

import (
	mock "github.com/stretchr/testify/mock"
	light "github.com/wheelibin/huelib/internal/light"
)

// MockWatcherLightPublisher is an autogenerated mock type for the lightPublisher type
type MockWatcherLightPublisher struct {
	mock.Mock
}

// PublishLight provides a mock function with given fields: l
func (_m *MockWatcherLightPublisher) PublishLight(l light.Light) error {
	ret := _m.Called(l)

	var r0 error
	if rf, ok := ret.Get(0).(func(light.Light) error); ok {
		r0 = rf(l)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockWatcherLightPublisher creates a new instance of MockWatcherLightPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWatcherLightPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcherLightPublisher {
	mock := &MockWatcherLightPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
