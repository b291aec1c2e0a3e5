// Package repository provides testify mocks of the repository interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"autonomax/internal/domain/entity"
	"autonomax/internal/domain/repository"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a MockUserRepository whose expectations are asserted when the test ends.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepository_Expecter records expectations on MockUserRepository.
type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := _m.Called(ctx, id)

	return get[*entity.User](args, 0), args.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := _m.Called(ctx, email)

	return get[*entity.User](args, 0), args.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByEmail(ctx, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

// MockBusinessRepository is a testify mock of repository.BusinessRepository.
type MockBusinessRepository struct {
	mock.Mock
}

// NewMockBusinessRepository creates a MockBusinessRepository whose expectations are asserted when the test ends.
func NewMockBusinessRepository(t testingT) *MockBusinessRepository {
	m := &MockBusinessRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockBusinessRepository_Expecter records expectations on MockBusinessRepository.
type MockBusinessRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBusinessRepository) EXPECT() *MockBusinessRepository_Expecter {
	return &MockBusinessRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	return _m.Called(ctx, business).Error(0)
}

func (_e *MockBusinessRepository_Expecter) Create(ctx, business any) *mock.Call {
	return _e.mock.On("Create", ctx, business)
}

func (_m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := _m.Called(ctx, id)

	return get[*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockBusinessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	args := _m.Called(ctx, ownerID)

	return get[[]*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessRepository_Expecter) ListByOwner(ctx, ownerID any) *mock.Call {
	return _e.mock.On("ListByOwner", ctx, ownerID)
}

func (_m *MockBusinessRepository) Update(ctx context.Context, business *entity.Business) error {
	return _m.Called(ctx, business).Error(0)
}

func (_e *MockBusinessRepository_Expecter) Update(ctx, business any) *mock.Call {
	return _e.mock.On("Update", ctx, business)
}

func (_m *MockBusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockBusinessRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// MockClientRepository is a testify mock of repository.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

// NewMockClientRepository creates a MockClientRepository whose expectations are asserted when the test ends.
func NewMockClientRepository(t testingT) *MockClientRepository {
	m := &MockClientRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockClientRepository_Expecter records expectations on MockClientRepository.
type MockClientRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClientRepository) EXPECT() *MockClientRepository_Expecter {
	return &MockClientRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockClientRepository) Create(ctx context.Context, client *entity.Client) error {
	return _m.Called(ctx, client).Error(0)
}

func (_e *MockClientRepository_Expecter) Create(ctx, client any) *mock.Call {
	return _e.mock.On("Create", ctx, client)
}

func (_m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	args := _m.Called(ctx, id)

	return get[*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockClientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Client, error) {
	args := _m.Called(ctx, ids)

	return get[[]*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientRepository_Expecter) FindByIDs(ctx, ids any) *mock.Call {
	return _e.mock.On("FindByIDs", ctx, ids)
}

func (_m *MockClientRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Client, error) {
	args := _m.Called(ctx, businessID)

	return get[[]*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientRepository_Expecter) ListByBusiness(ctx, businessID any) *mock.Call {
	return _e.mock.On("ListByBusiness", ctx, businessID)
}

func (_m *MockClientRepository) Update(ctx context.Context, client *entity.Client) error {
	return _m.Called(ctx, client).Error(0)
}

func (_e *MockClientRepository_Expecter) Update(ctx, client any) *mock.Call {
	return _e.mock.On("Update", ctx, client)
}

func (_m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockClientRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a MockProductRepository whose expectations are asserted when the test ends.
func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProductRepository_Expecter records expectations on MockProductRepository.
type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return _m.Called(ctx, product).Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx, product any) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := _m.Called(ctx, id)

	return get[*entity.Product](args, 0), args.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockProductRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	args := _m.Called(ctx, businessID)

	return get[[]*entity.Product](args, 0), args.Error(1)
}

func (_e *MockProductRepository_Expecter) ListByBusiness(ctx, businessID any) *mock.Call {
	return _e.mock.On("ListByBusiness", ctx, businessID)
}

func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockProductRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// MockTransactionRepository is a testify mock of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a MockTransactionRepository whose expectations are asserted when the test ends.
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionRepository_Expecter records expectations on MockTransactionRepository.
type MockTransactionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionRepository) EXPECT() *MockTransactionRepository_Expecter {
	return &MockTransactionRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return _m.Called(ctx, txn).Error(0)
}

func (_e *MockTransactionRepository_Expecter) Create(ctx, txn any) *mock.Call {
	return _e.mock.On("Create", ctx, txn)
}

func (_m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	args := _m.Called(ctx, id)

	return get[*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockTransactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	args := _m.Called(ctx, filter)

	return get[[]*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionRepository_Expecter) List(ctx, filter any) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func (_e *MockTransactionRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
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
