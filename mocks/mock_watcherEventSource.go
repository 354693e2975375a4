package mocks

import (
	sse "github.com/r3labs/sse/v2"
	mock "github.com/stretchr/testify/mock"
)

// MockWatcherEventSource is an autogenerated mock type for the eventSource type
type MockWatcherEventSource struct {
	mock.Mock
}

// Subscribe provides a mock function with given fields: eventChannel
func (_m *MockWatcherEventSource) Subscribe(eventChannel chan *sse.Event) error {
	ret := _m.Called(eventChannel)

	var r0 error
	if rf, ok := ret.Get(0).(func(chan *sse.Event) error); ok {
		r0 = rf(eventChannel)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Unsubscribe provides a mock function with given fields:
func (_m *MockWatcherEventSource) Unsubscribe() {
	_m.Called()
}

// NewMockWatcherEventSource creates a new instance of MockWatcherEventSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWatcherEventSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcherEventSource {
	mock := &MockWatcherEventSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
