// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"autonomax/internal/domain/entity"
	"autonomax/internal/domain/service"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a MockPasswordHasher whose expectations are asserted when the test ends.
func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasher_Expecter records expectations on MockPasswordHasher.
type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	args := _m.Called(password)

	return get[string](args, 0), args.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password string, hash string) bool {
	return _m.Called(password, hash).Bool(0)
}

func (_e *MockPasswordHasher_Expecter) Check(password, hash any) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a MockTokenService whose expectations are asserted when the test ends.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService_Expecter records expectations on MockTokenService.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) Issue(user *entity.User) (string, time.Time, error) {
	args := _m.Called(user)

	return get[string](args, 0), get[time.Time](args, 1), args.Error(2)
}

func (_e *MockTokenService_Expecter) Issue(user any) *mock.Call {
	return _e.mock.On("Issue", user)
}

func (_m *MockTokenService) Validate(token string) (*service.UserClaims, error) {
	args := _m.Called(token)

	return get[*service.UserClaims](args, 0), args.Error(1)
}

func (_e *MockTokenService_Expecter) Validate(token any) *mock.Call {
	return _e.mock.On("Validate", token)
}

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// get returns the i-th return value as T, or the zero value when it was set to nil.
func get[T any](args mock.Arguments, i int) T {
	var zero T
	v := args.Get(i)
	if v == nil {
		return zero
	}

	return v.(T)
}
