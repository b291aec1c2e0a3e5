package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"autonomax/internal/domain/entity"
	mockRepo "autonomax/internal/mocks/repository"
	mockSvc "autonomax/internal/mocks/service"
)

// mockAnyCtx matches whatever context the services pass down.
var mockAnyCtx = mock.Anything

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

type testFixture struct {
	users        *mockRepo.MockUserRepository
	businesses   *mockRepo.MockBusinessRepository
	clients      *mockRepo.MockClientRepository
	products     *mockRepo.MockProductRepository
	transactions *mockRepo.MockTransactionRepository
	txManager    *mockRepo.TxManager
	hasher       *mockSvc.MockPasswordHasher
	tokens       *mockSvc.MockTokenService
	logger       *slog.Logger
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		users:        mockRepo.NewMockUserRepository(t),
		businesses:   mockRepo.NewMockBusinessRepository(t),
		clients:      mockRepo.NewMockClientRepository(t),
		products:     mockRepo.NewMockProductRepository(t),
		transactions: mockRepo.NewMockTransactionRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokens:       mockSvc.NewMockTokenService(t),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.txManager = &mockRepo.TxManager{Factory: &mockRepo.RepositoryFactory{
		Users:        f.users,
		Businesses:   f.businesses,
		Clients:      f.clients,
		Products:     f.products,
		Transactions: f.transactions,
	}}

	return f
}

// ownedBusiness registers a business owned by ownerID and returns it.
func (f *testFixture) ownedBusiness(ownerID uuid.UUID) *entity.Business {
	b := &entity.Business{ID: uuid.New(), Name: "Padaria", OwnerUserID: ownerID}
	f.businesses.EXPECT().FindByID(mockAnyCtx, b.ID).Return(b, nil)

	return b
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
