package middleware

import (
	"sync"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	// ValidateFunc mocks the Validate method.
	ValidateFunc func(token string) (string, error)

	calls struct {
		// Validate holds details about calls to the Validate method.
		Validate []struct {
			// Token is the token argument value.
			Token string
		}
	}
	lockValidate sync.RWMutex
}

// Validate calls ValidateFunc.
func (mock *tokenValidatorMock) Validate(token string) (string, error) {
	if mock.ValidateFunc == nil {
		panic("tokenValidatorMock.ValidateFunc: method is nil but tokenValidator.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

// ValidateCalls gets all the calls that were made to Validate.
func (mock *tokenValidatorMock) ValidateCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidate.RLock()
	calls = mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
