package auth

import (
	"context"
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	ClearFunc   func(ctx context.Context) error
	OnClearFunc func(fn func())
	RestoreFunc func(ctx context.Context) (string, error)

	calls struct {
		Clear []struct {
			Ctx context.Context
		}
		OnClear []struct {
			Fn func()
		}
		Restore []struct {
			Ctx context.Context
		}
	}
	lockClear   sync.RWMutex
	lockOnClear sync.RWMutex
	lockRestore sync.RWMutex
}

func (mock *sessionStoreMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("sessionStoreMock.ClearFunc: method is nil but sessionStore.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *sessionStoreMock) ClearCalls() []struct {
	Ctx context.Context
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *sessionStoreMock) OnClear(fn func()) {
	if mock.OnClearFunc == nil {
		panic("sessionStoreMock.OnClearFunc: method is nil but sessionStore.OnClear was just called")
	}
	callInfo := struct {
		Fn func()
	}{Fn: fn}
	mock.lockOnClear.Lock()
	mock.calls.OnClear = append(mock.calls.OnClear, callInfo)
	mock.lockOnClear.Unlock()
	mock.OnClearFunc(fn)
}

func (mock *sessionStoreMock) OnClearCalls() []struct {
	Fn func()
} {
	mock.lockOnClear.RLock()
	calls := mock.calls.OnClear
	mock.lockOnClear.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Restore(ctx context.Context) (string, error) {
	if mock.RestoreFunc == nil {
		panic("sessionStoreMock.RestoreFunc: method is nil but sessionStore.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx)
}

func (mock *sessionStoreMock) RestoreCalls() []struct {
	Ctx context.Context
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}
