// Package mocks provides test doubles for the merge run recorder.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	model "github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// MockRecorder is a mock type for the Recorder interface.
type MockRecorder struct {
	mock.Mock
}

// CreateRun provides a mock function with given fields: ctx, input
func (_m *MockRecorder) CreateRun(ctx context.Context, input model.RunInput) (*model.Run, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateRun")
	}

	var r0 *model.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.RunInput) (*model.Run, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.RunInput) *model.Run); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.RunInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CompleteRun provides a mock function with given fields: ctx, runID, result
func (_m *MockRecorder) CompleteRun(ctx context.Context, runID string, result *model.RunResult) error {
	ret := _m.Called(ctx, runID, result)

	if len(ret) == 0 {
		panic("no return value specified for CompleteRun")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *model.RunResult) error); ok {
		r0 = rf(ctx, runID, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FailRun provides a mock function with given fields: ctx, runID, runErr
func (_m *MockRecorder) FailRun(ctx context.Context, runID string, runErr *model.RunError) error {
	ret := _m.Called(ctx, runID, runErr)

	if len(ret) == 0 {
		panic("no return value specified for FailRun")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *model.RunError) error); ok {
		r0 = rf(ctx, runID, runErr)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockRecorder creates a new instance of MockRecorder.
func NewMockRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecorder {
	mock := &MockRecorder{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
