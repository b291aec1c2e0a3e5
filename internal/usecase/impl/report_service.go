package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/repository"
	"autonomax/internal/ledger"
	"autonomax/internal/usecase"
)

// dashboardMonths is how many months with activity the dashboard shows.
const dashboardMonths = 6

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	BusinessRepo    repository.BusinessRepository
	ClientRepo      repository.ClientRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

type reportService struct {
	clientRepo      repository.ClientRepository
	transactionRepo repository.TransactionRepository
	guard           ownershipGuard
	logger          *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		clientRepo:      params.ClientRepo,
		transactionRepo: params.TransactionRepo,
		guard:           ownershipGuard{businesses: params.BusinessRepo, logger: params.Logger},
		logger:          params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) Dashboard(ctx context.Context, userID, businessID uuid.UUID) (*usecase.Dashboard, error) {
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	txs, err := srv.transactionRepo.List(ctx, repository.TransactionFilter{BusinessID: businessID})
	if err != nil {
		return nil, dbError(err, "failed to list transactions")
	}

	top, err := rankClients(ctx, srv.clientRepo, txs, ledger.TopClientsSummary)
	if err != nil {
		return nil, err
	}

	return &usecase.Dashboard{
		Summary:      ledger.Totals(txs),
		TopClients:   top,
		RecentMonths: ledger.RecentMonths(txs, dashboardMonths),
	}, nil
}

func (srv *reportService) Annual(
	ctx context.Context,
	userID, businessID uuid.UUID,
	year int,
) (*usecase.AnnualReport, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	from, to := yearRange(year)
	txs, err := srv.transactionRepo.List(ctx, repository.TransactionFilter{BusinessID: businessID, From: &from, To: &to})
	if err != nil {
		return nil, dbError(err, "failed to list transactions")
	}

	topClients, err := rankClients(ctx, srv.clientRepo, txs, ledger.TopClients)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Annual report built",
		slog.String("business_id", businessID.String()),
		slog.Int("year", year),
		slog.Int("transactions", len(txs)),
	)

	return &usecase.AnnualReport{
		Year:            year,
		Summary:         ledger.Totals(txs),
		Months:          ledger.MonthlySeries(txs, year),
		TopItems:        ledger.RankItems(txs, ledger.TopItemsDashboard),
		TopItemsCompact: ledger.RankItems(txs, ledger.TopItemsCompact),
		TopClients:      topClients,
	}, nil
}
