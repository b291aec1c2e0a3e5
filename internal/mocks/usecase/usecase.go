// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"autonomax/internal/domain/entity"
	"autonomax/internal/usecase"
)

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a MockUserUsecase whose expectations are asserted when the test ends.
func NewMockUserUsecase(t testingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserUsecase_Expecter records expectations on MockUserUsecase.
type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	args := _m.Called(ctx, input)

	return get[*entity.User](args, 0), args.Error(1)
}

func (_e *MockUserUsecase_Expecter) Register(ctx, input any) *mock.Call {
	return _e.mock.On("Register", ctx, input)
}

func (_m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := _m.Called(ctx, input)

	return get[*usecase.LoginOutput](args, 0), args.Error(1)
}

func (_e *MockUserUsecase_Expecter) Login(ctx, input any) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

func (_m *MockUserUsecase) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := _m.Called(ctx, userID)

	return get[*entity.User](args, 0), args.Error(1)
}

func (_e *MockUserUsecase_Expecter) Me(ctx, userID any) *mock.Call {
	return _e.mock.On("Me", ctx, userID)
}

// MockBusinessUsecase is a testify mock of usecase.BusinessUsecase.
type MockBusinessUsecase struct {
	mock.Mock
}

// NewMockBusinessUsecase creates a MockBusinessUsecase whose expectations are asserted when the test ends.
func NewMockBusinessUsecase(t testingT) *MockBusinessUsecase {
	m := &MockBusinessUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockBusinessUsecase_Expecter records expectations on MockBusinessUsecase.
type MockBusinessUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBusinessUsecase) EXPECT() *MockBusinessUsecase_Expecter {
	return &MockBusinessUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockBusinessUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entity.Business, error) {
	args := _m.Called(ctx, userID)

	return get[[]*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessUsecase_Expecter) List(ctx, userID any) *mock.Call {
	return _e.mock.On("List", ctx, userID)
}

func (_m *MockBusinessUsecase) Get(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) (*entity.Business, error) {
	args := _m.Called(ctx, userID, businessID)

	return get[*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessUsecase_Expecter) Get(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("Get", ctx, userID, businessID)
}

func (_m *MockBusinessUsecase) Create(ctx context.Context, userID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	args := _m.Called(ctx, userID, input)

	return get[*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessUsecase_Expecter) Create(ctx, userID, input any) *mock.Call {
	return _e.mock.On("Create", ctx, userID, input)
}

func (_m *MockBusinessUsecase) Update(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	args := _m.Called(ctx, userID, businessID, input)

	return get[*entity.Business](args, 0), args.Error(1)
}

func (_e *MockBusinessUsecase_Expecter) Update(ctx, userID, businessID, input any) *mock.Call {
	return _e.mock.On("Update", ctx, userID, businessID, input)
}

func (_m *MockBusinessUsecase) Delete(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) error {
	return _m.Called(ctx, userID, businessID).Error(0)
}

func (_e *MockBusinessUsecase_Expecter) Delete(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, businessID)
}

// MockClientUsecase is a testify mock of usecase.ClientUsecase.
type MockClientUsecase struct {
	mock.Mock
}

// NewMockClientUsecase creates a MockClientUsecase whose expectations are asserted when the test ends.
func NewMockClientUsecase(t testingT) *MockClientUsecase {
	m := &MockClientUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockClientUsecase_Expecter records expectations on MockClientUsecase.
type MockClientUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClientUsecase) EXPECT() *MockClientUsecase_Expecter {
	return &MockClientUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockClientUsecase) ListByBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) ([]*entity.Client, error) {
	args := _m.Called(ctx, userID, businessID)

	return get[[]*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientUsecase_Expecter) ListByBusiness(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("ListByBusiness", ctx, userID, businessID)
}

func (_m *MockClientUsecase) Get(ctx context.Context, userID uuid.UUID, clientID uuid.UUID) (*entity.Client, error) {
	args := _m.Called(ctx, userID, clientID)

	return get[*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientUsecase_Expecter) Get(ctx, userID, clientID any) *mock.Call {
	return _e.mock.On("Get", ctx, userID, clientID)
}

func (_m *MockClientUsecase) Create(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, input *usecase.ClientInput) (*entity.Client, error) {
	args := _m.Called(ctx, userID, businessID, input)

	return get[*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientUsecase_Expecter) Create(ctx, userID, businessID, input any) *mock.Call {
	return _e.mock.On("Create", ctx, userID, businessID, input)
}

func (_m *MockClientUsecase) Update(ctx context.Context, userID uuid.UUID, clientID uuid.UUID, input *usecase.ClientInput) (*entity.Client, error) {
	args := _m.Called(ctx, userID, clientID, input)

	return get[*entity.Client](args, 0), args.Error(1)
}

func (_e *MockClientUsecase_Expecter) Update(ctx, userID, clientID, input any) *mock.Call {
	return _e.mock.On("Update", ctx, userID, clientID, input)
}

func (_m *MockClientUsecase) Delete(ctx context.Context, userID uuid.UUID, clientID uuid.UUID) error {
	return _m.Called(ctx, userID, clientID).Error(0)
}

func (_e *MockClientUsecase_Expecter) Delete(ctx, userID, clientID any) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, clientID)
}

func (_m *MockClientUsecase) Ranking(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) ([]usecase.ClientRanking, error) {
	args := _m.Called(ctx, userID, businessID)

	return get[[]usecase.ClientRanking](args, 0), args.Error(1)
}

func (_e *MockClientUsecase_Expecter) Ranking(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("Ranking", ctx, userID, businessID)
}

// MockProductUsecase is a testify mock of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a MockProductUsecase whose expectations are asserted when the test ends.
func NewMockProductUsecase(t testingT) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProductUsecase_Expecter records expectations on MockProductUsecase.
type MockProductUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductUsecase) EXPECT() *MockProductUsecase_Expecter {
	return &MockProductUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockProductUsecase) ListByBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) ([]*entity.Product, error) {
	args := _m.Called(ctx, userID, businessID)

	return get[[]*entity.Product](args, 0), args.Error(1)
}

func (_e *MockProductUsecase_Expecter) ListByBusiness(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("ListByBusiness", ctx, userID, businessID)
}

func (_m *MockProductUsecase) Create(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	args := _m.Called(ctx, userID, businessID, input)

	return get[*entity.Product](args, 0), args.Error(1)
}

func (_e *MockProductUsecase_Expecter) Create(ctx, userID, businessID, input any) *mock.Call {
	return _e.mock.On("Create", ctx, userID, businessID, input)
}

func (_m *MockProductUsecase) Delete(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	return _m.Called(ctx, userID, productID).Error(0)
}

func (_e *MockProductUsecase_Expecter) Delete(ctx, userID, productID any) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, productID)
}

// MockTransactionUsecase is a testify mock of usecase.TransactionUsecase.
type MockTransactionUsecase struct {
	mock.Mock
}

// NewMockTransactionUsecase creates a MockTransactionUsecase whose expectations are asserted when the test ends.
func NewMockTransactionUsecase(t testingT) *MockTransactionUsecase {
	m := &MockTransactionUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionUsecase_Expecter records expectations on MockTransactionUsecase.
type MockTransactionUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionUsecase) EXPECT() *MockTransactionUsecase_Expecter {
	return &MockTransactionUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactionUsecase) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	args := _m.Called(ctx, userID, input)

	return get[*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) Create(ctx, userID, input any) *mock.Call {
	return _e.mock.On("Create", ctx, userID, input)
}

func (_m *MockTransactionUsecase) Get(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) (*entity.Transaction, error) {
	args := _m.Called(ctx, userID, transactionID)

	return get[*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) Get(ctx, userID, transactionID any) *mock.Call {
	return _e.mock.On("Get", ctx, userID, transactionID)
}

func (_m *MockTransactionUsecase) Delete(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) error {
	return _m.Called(ctx, userID, transactionID).Error(0)
}

func (_e *MockTransactionUsecase_Expecter) Delete(ctx, userID, transactionID any) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, transactionID)
}

func (_m *MockTransactionUsecase) ListByPeriod(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, month int, year int) ([]*entity.Transaction, error) {
	args := _m.Called(ctx, userID, businessID, month, year)

	return get[[]*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) ListByPeriod(ctx, userID, businessID, month, year any) *mock.Call {
	return _e.mock.On("ListByPeriod", ctx, userID, businessID, month, year)
}

func (_m *MockTransactionUsecase) ListByBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, year *int) ([]*entity.Transaction, error) {
	args := _m.Called(ctx, userID, businessID, year)

	return get[[]*entity.Transaction](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) ListByBusiness(ctx, userID, businessID, year any) *mock.Call {
	return _e.mock.On("ListByBusiness", ctx, userID, businessID, year)
}

func (_m *MockTransactionUsecase) ListByClient(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, clientID uuid.UUID) (*usecase.ClientStatement, error) {
	args := _m.Called(ctx, userID, businessID, clientID)

	return get[*usecase.ClientStatement](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) ListByClient(ctx, userID, businessID, clientID any) *mock.Call {
	return _e.mock.On("ListByClient", ctx, userID, businessID, clientID)
}

func (_m *MockTransactionUsecase) Monthly(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, month int, year int) (*usecase.MonthlyStatement, error) {
	args := _m.Called(ctx, userID, businessID, month, year)

	return get[*usecase.MonthlyStatement](args, 0), args.Error(1)
}

func (_e *MockTransactionUsecase_Expecter) Monthly(ctx, userID, businessID, month, year any) *mock.Call {
	return _e.mock.On("Monthly", ctx, userID, businessID, month, year)
}

// MockReportUsecase is a testify mock of usecase.ReportUsecase.
type MockReportUsecase struct {
	mock.Mock
}

// NewMockReportUsecase creates a MockReportUsecase whose expectations are asserted when the test ends.
func NewMockReportUsecase(t testingT) *MockReportUsecase {
	m := &MockReportUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockReportUsecase_Expecter records expectations on MockReportUsecase.
type MockReportUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportUsecase) EXPECT() *MockReportUsecase_Expecter {
	return &MockReportUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockReportUsecase) Dashboard(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) (*usecase.Dashboard, error) {
	args := _m.Called(ctx, userID, businessID)

	return get[*usecase.Dashboard](args, 0), args.Error(1)
}

func (_e *MockReportUsecase_Expecter) Dashboard(ctx, userID, businessID any) *mock.Call {
	return _e.mock.On("Dashboard", ctx, userID, businessID)
}

func (_m *MockReportUsecase) Annual(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, year int) (*usecase.AnnualReport, error) {
	args := _m.Called(ctx, userID, businessID, year)

	return get[*usecase.AnnualReport](args, 0), args.Error(1)
}

func (_e *MockReportUsecase_Expecter) Annual(ctx, userID, businessID, year any) *mock.Call {
	return _e.mock.On("Annual", ctx, userID, businessID, year)
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
