package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	light "github.com/wheelibin/huelib/internal/light"
)

// MockWatcherBridge is an autogenerated mock type for the bridge type
type MockWatcherBridge struct {
	mock.Mock
}

// GetAllLights provides a mock function with given fields: ctx
func (_m *MockWatcherBridge) GetAllLights(ctx context.Context) ([]light.Light, error) {
	ret := _m.Called(ctx)

	var r0 []light.Light
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]light.Light, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []light.Light); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]light.Light)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetLight provides a mock function with given fields: ctx, id
func (_m *MockWatcherBridge) GetLight(ctx context.Context, id string) (light.Light, error) {
	ret := _m.Called(ctx, id)

	var r0 light.Light
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (light.Light, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) light.Light); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(light.Light)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWatcherBridge creates a new instance of MockWatcherBridge. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWatcherBridge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcherBridge {
	mock := &MockWatcherBridge{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
