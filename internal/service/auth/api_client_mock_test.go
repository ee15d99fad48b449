package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

var _ apiClient = &apiClientMock{}

type apiClientMock struct {
	GetCurrentUserFunc func(ctx context.Context) (domain.User, error)
	LoginFunc          func(ctx context.Context, email string, password string) (domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context)
	RegisterFunc       func(ctx context.Context, email string, password string, name string) (domain.AuthResult, error)

	calls struct {
		GetCurrentUser []struct {
			Ctx context.Context
		}
		Login []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		Logout []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx      context.Context
			Email    string
			Password string
			Name     string
		}
	}
	lockGetCurrentUser sync.RWMutex
	lockLogin          sync.RWMutex
	lockLogout         sync.RWMutex
	lockRegister       sync.RWMutex
}

func (mock *apiClientMock) GetCurrentUser(ctx context.Context) (domain.User, error) {
	if mock.GetCurrentUserFunc == nil {
		panic("apiClientMock.GetCurrentUserFunc: method is nil but apiClient.GetCurrentUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetCurrentUser.Lock()
	mock.calls.GetCurrentUser = append(mock.calls.GetCurrentUser, callInfo)
	mock.lockGetCurrentUser.Unlock()
	return mock.GetCurrentUserFunc(ctx)
}

func (mock *apiClientMock) GetCurrentUserCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetCurrentUser.RLock()
	calls := mock.calls.GetCurrentUser
	mock.lockGetCurrentUser.RUnlock()
	return calls
}

func (mock *apiClientMock) Login(ctx context.Context, email string, password string) (domain.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("apiClientMock.LoginFunc: method is nil but apiClient.Login was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{Ctx: ctx, Email: email, Password: password}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, email, password)
}

func (mock *apiClientMock) LoginCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *apiClientMock) Logout(ctx context.Context) {
	if mock.LogoutFunc == nil {
		panic("apiClientMock.LogoutFunc: method is nil but apiClient.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	mock.LogoutFunc(ctx)
}

func (mock *apiClientMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *apiClientMock) Register(ctx context.Context, email string, password string, name string) (domain.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("apiClientMock.RegisterFunc: method is nil but apiClient.Register was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
		Name     string
	}{Ctx: ctx, Email: email, Password: password, Name: name}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, email, password, name)
}

func (mock *apiClientMock) RegisterCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
	Name     string
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
