package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/usecase"
)

func newTestClientService(f *testFixture) usecase.ClientUsecase {
	return NewClientService(ClientServiceParams{
		BusinessRepo:    f.businesses,
		ClientRepo:      f.clients,
		TransactionRepo: f.transactions,
		Logger:          f.logger,
	})
}

func strPtr(s string) *string { return &s }

func TestClientService_CreateInForeignBusiness(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestClientService(f)
	b := f.ownedBusiness(uuid.New())

	_, err := srv.Create(context.Background(), uuid.New(), b.ID, &usecase.ClientInput{Name: "Maria"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	f.clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_BlankName(t *testing.T) {
	ctx := context.Background()
	f := newTestFixture(t)
	srv := newTestClientService(f)

	_, err := srv.Create(ctx, uuid.New(), uuid.New(), &usecase.ClientInput{Name: "    "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Update(ctx, uuid.New(), uuid.New(), &usecase.ClientInput{Name: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestClientService_Update(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestClientService(f)
	owner := uuid.New()
	b := f.ownedBusiness(owner)
	client := &entity.Client{ID: uuid.New(), Name: "Maria", BusinessID: b.ID}

	f.clients.EXPECT().FindByID(mockAnyCtx, client.ID).Return(client, nil)
	f.clients.EXPECT().Update(mockAnyCtx, client).Return(nil)

	got, err := srv.Update(context.Background(), owner, client.ID, &usecase.ClientInput{
		Name:  "Maria Silva",
		State: strPtr(" sp "),
		Phone: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.BusinessID)
	assert.Equal(t, "Maria Silva", got.Name)
	require.NotNil(t, got.State)
	assert.Equal(t, "SP", *got.State)
	assert.Nil(t, got.Phone)
}

func TestClientService_Ranking(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestClientService(f)
	owner := uuid.New()
	b := f.ownedBusiness(owner)
	ana, bia, gone := uuid.New(), uuid.New(), uuid.New()

	txs := []*entity.Transaction{
		{Amount: money("50"), Kind: entity.KindIncome, ClientID: &ana},
		{Amount: money("200"), Kind: entity.KindIncome, ClientID: &bia},
		{Amount: money("70"), Kind: entity.KindIncome, ClientID: &ana},
		{Amount: money("500"), Kind: entity.KindIncome, ClientID: &gone},
		{Amount: money("999"), Kind: entity.KindExpense, ClientID: &ana},
	}
	f.transactions.EXPECT().List(mockAnyCtx, mock.Anything).Return(txs, nil)
	f.clients.EXPECT().FindByIDs(mockAnyCtx, mock.Anything).Return([]*entity.Client{
		{ID: ana, Name: "Ana"},
		{ID: bia, Name: "Bia"},
	}, nil)

	got, err := srv.Ranking(context.Background(), owner, b.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bia", got[0].Name)
	assert.True(t, got[0].Total.Equal(money("200")))
	assert.Equal(t, "Ana", got[1].Name)
	assert.True(t, got[1].Total.Equal(money("120")))
	assert.Equal(t, 2, got[1].Count)
}

func TestClientService_RankingEmpty(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestClientService(f)
	owner := uuid.New()
	b := f.ownedBusiness(owner)

	f.transactions.EXPECT().List(mockAnyCtx, mock.Anything).Return([]*entity.Transaction{}, nil)

	got, err := srv.Ranking(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	f.clients.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
