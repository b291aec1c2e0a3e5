package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/usecase"
)

func newTestReportService(f *testFixture) usecase.ReportUsecase {
	return NewReportService(ReportServiceParams{
		BusinessRepo:    f.businesses,
		ClientRepo:      f.clients,
		TransactionRepo: f.transactions,
		Logger:          f.logger,
	})
}

func reportLedger(clientID uuid.UUID) []*entity.Transaction {
	at := func(m time.Month) time.Time { return time.Date(2024, m, 10, 12, 0, 0, 0, time.UTC) }

	return []*entity.Transaction{
		{Amount: money("300"), Kind: entity.KindIncome, Date: at(time.March), ClientID: &clientID,
			Items: []entity.LineItem{{Name: "Bolo", Quantity: 3}}},
		{Amount: money("120"), Kind: entity.KindExpense, Date: at(time.March)},
		{Amount: money("80"), Kind: entity.KindIncome, Date: at(time.January),
			Items: []entity.LineItem{{Name: "Torta", Quantity: 5}, {Name: " Bolo", Quantity: 1}}},
	}
}

func TestReportService_Dashboard(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestReportService(f)
	owner := uuid.New()
	b := f.ownedBusiness(owner)
	clientID := uuid.New()

	f.transactions.EXPECT().
		List(mockAnyCtx, mock.MatchedBy(func(filter repository.TransactionFilter) bool {
			return filter.BusinessID == b.ID && filter.From == nil && filter.To == nil
		})).
		Return(reportLedger(clientID), nil)
	f.clients.EXPECT().FindByIDs(mockAnyCtx, []uuid.UUID{clientID}).
		Return([]*entity.Client{{ID: clientID, Name: "Ana"}}, nil)

	d, err := srv.Dashboard(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.True(t, d.Summary.Income.Equal(money("380")))
	assert.True(t, d.Summary.Balance.Equal(money("260")))
	require.Len(t, d.TopClients, 1)
	assert.Equal(t, "Ana", d.TopClients[0].Name)
	require.Len(t, d.RecentMonths, 2)
	assert.Equal(t, "03/2024", d.RecentMonths[0].Label)
	assert.Equal(t, "01/2024", d.RecentMonths[1].Label)
}

func TestReportService_Annual(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestReportService(f)
	owner := uuid.New()
	b := f.ownedBusiness(owner)
	clientID := uuid.New()

	f.transactions.EXPECT().
		List(mockAnyCtx, mock.MatchedBy(func(filter repository.TransactionFilter) bool {
			return filter.From != nil && filter.From.Year() == 2024 && filter.To != nil && filter.To.Year() == 2025
		})).
		Return(reportLedger(clientID), nil)
	f.clients.EXPECT().FindByIDs(mockAnyCtx, mock.Anything).
		Return([]*entity.Client{{ID: clientID, Name: "Ana"}}, nil)

	r, err := srv.Annual(context.Background(), owner, b.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, r.Year)
	require.Len(t, r.Months, 12)
	assert.True(t, r.Months[2].Profit.Equal(money("180")))
	assert.True(t, r.Months[1].Income.IsZero())
	require.Len(t, r.TopItems, 2)
	assert.Equal(t, "Torta", r.TopItems[0].Name)
	assert.Equal(t, 5, r.TopItems[0].Quantity)
	assert.Equal(t, "Bolo", r.TopItems[1].Name)
	assert.Equal(t, 4, r.TopItems[1].Quantity)
	assert.Len(t, r.TopClients, 1)
}

func TestReportService_AnnualRejectsYear(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestReportService(f)

	_, err := srv.Annual(context.Background(), uuid.New(), uuid.New(), 1850)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
