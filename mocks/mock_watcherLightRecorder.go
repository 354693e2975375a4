package mocks

import (
	time "time"

	mock "github.com/stretchr/testify/mock"
	light "github.com/wheelibin/huelib/internal/light"
)

// MockWatcherLightRecorder is an autogenerated mock type for the lightRecorder type
type MockWatcherLightRecorder struct {
	mock.Mock
}

// Record provides a mock function with given fields: l, at
func (_m *MockWatcherLightRecorder) Record(l light.Light, at time.Time) (bool, error) {
	ret := _m.Called(l, at)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(light.Light, time.Time) (bool, error)); ok {
		return rf(l, at)
	}
	if rf, ok := ret.Get(0).(func(light.Light, time.Time) bool); ok {
		r0 = rf(l, at)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(light.Light, time.Time) error); ok {
		r1 = rf(l, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWatcherLightRecorder creates a new instance of MockWatcherLightRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWatcherLightRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcherLightRecorder {
	mock := &MockWatcherLightRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
