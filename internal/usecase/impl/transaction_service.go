package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/errors"
	"autonomax/internal/ledger"
	"autonomax/internal/usecase"
)

// maxAmount is the largest value the amount column accepts.
var maxAmount = decimal.RequireFromString("9999999.99")

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TxManager
	BusinessRepo    repository.BusinessRepository
	ClientRepo      repository.ClientRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
	Clock           func() time.Time `optional:"true"`
}

type transactionService struct {
	txManager       repository.TxManager
	clientRepo      repository.ClientRepository
	transactionRepo repository.TransactionRepository
	guard           ownershipGuard
	logger          *slog.Logger
	now             func() time.Time
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	return &transactionService{
		txManager:       params.TxManager,
		clientRepo:      params.ClientRepo,
		transactionRepo: params.TransactionRepo,
		guard:           ownershipGuard{businesses: params.BusinessRepo, logger: params.Logger},
		logger:          params.Logger,
		now:             now,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a transaction and its items atomically. A client, when
// given, must belong to the same business.
func (srv *transactionService) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.CreateTransactionInput,
) (*entity.Transaction, error) {
	txn, err := srv.buildTransaction(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := srv.guard.businessIn(ctx, factory.NewBusinessRepository(), userID, txn.BusinessID); err != nil {
			return err
		}

		if txn.ClientID != nil {
			client, err := factory.NewClientRepository().FindByID(ctx, *txn.ClientID)
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientOutsideBusiness
			}
			if err != nil {
				return dbError(err, "failed to load client")
			}
			if client.BusinessID != txn.BusinessID {
				return domainerrors.ErrClientOutsideBusiness
			}
			txn.Client = client
		}

		return factory.NewTransactionRepository().Create(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transaction recorded",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("business_id", txn.BusinessID.String()),
		slog.String("kind", string(txn.Kind)),
	)

	return txn, nil
}

func (srv *transactionService) buildTransaction(input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Kind.Valid() {
		return nil, domainerrors.ErrInvalidKind
	}

	var fields []domainerrors.FieldError
	description := strings.TrimSpace(input.Description)
	if description == "" {
		fields = append(fields, domainerrors.FieldError{Field: "descricao", Rule: "required"})
	}
	if !input.Amount.IsPositive() {
		fields = append(fields, domainerrors.FieldError{Field: "valor", Rule: "gt", Param: "0"})
	} else if input.Amount.GreaterThan(maxAmount) {
		fields = append(fields, domainerrors.FieldError{Field: "valor", Rule: "lte", Param: maxAmount.String()})
	} else if !hasCents(input.Amount) {
		fields = append(fields, domainerrors.FieldError{Field: "valor", Rule: "decimals", Param: "2"})
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		item := entity.LineItem{Name: it.Name, Quantity: it.Quantity}
		if item.NormalizedName() == "" {
			fields = append(fields, domainerrors.FieldError{Field: "itens.nome", Rule: "required"})
			continue
		}
		if item.Quantity < 1 {
			fields = append(fields, domainerrors.FieldError{Field: "itens.quantidade", Rule: "min", Param: "1"})
			continue
		}
		item.Name = item.NormalizedName()
		items = append(items, item)
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	date := input.Date
	if date.IsZero() {
		date = srv.now()
	}

	return &entity.Transaction{
		Description: description,
		Amount:      input.Amount,
		Kind:        input.Kind,
		Date:        date.UTC(),
		BusinessID:  input.BusinessID,
		ClientID:    input.ClientID,
		Items:       items,
	}, nil
}

func (srv *transactionService) Get(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.owned(ctx, userID, transactionID)
}

// Delete removes a transaction and its items. The ownership check and the
// delete share one database transaction.
func (srv *transactionService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txs := factory.NewTransactionRepository()

		txn, err := txs.FindByID(ctx, transactionID)
		if err != nil {
			return notFound(err, repository.ErrTransactionNotFound, "failed to load transaction")
		}
		if _, err := srv.guard.businessIn(ctx, factory.NewBusinessRepository(), userID, txn.BusinessID); err != nil {
			return err
		}

		if err := txs.Delete(ctx, transactionID); err != nil {
			return notFound(err, repository.ErrTransactionNotFound, "failed to delete transaction")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Transaction deleted", slog.String("transaction_id", transactionID.String()))

	return nil
}

func (srv *transactionService) ListByPeriod(
	ctx context.Context,
	userID, businessID uuid.UUID,
	month, year int,
) ([]*entity.Transaction, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	from, to := monthRange(month, year)

	return srv.list(ctx, repository.TransactionFilter{BusinessID: businessID, From: &from, To: &to})
}

func (srv *transactionService) ListByBusiness(
	ctx context.Context,
	userID, businessID uuid.UUID,
	year *int,
) ([]*entity.Transaction, error) {
	filter := repository.TransactionFilter{BusinessID: businessID}
	if year != nil {
		if err := validateYear(*year); err != nil {
			return nil, err
		}
		from, to := yearRange(*year)
		filter.From, filter.To = &from, &to
	}
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	return srv.list(ctx, filter)
}

// ListByClient returns a client's statement. The client must belong to businessID.
func (srv *transactionService) ListByClient(
	ctx context.Context,
	userID, businessID, clientID uuid.UUID,
) (*usecase.ClientStatement, error) {
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	client, err := srv.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, notFound(err, repository.ErrClientNotFound, "failed to load client")
	}
	if client.BusinessID != businessID {
		return nil, domainerrors.ErrNotFound
	}

	txs, err := srv.list(ctx, repository.TransactionFilter{BusinessID: businessID, ClientID: &clientID})
	if err != nil {
		return nil, err
	}

	return &usecase.ClientStatement{Client: client, Transactions: txs}, nil
}

func (srv *transactionService) Monthly(
	ctx context.Context,
	userID, businessID uuid.UUID,
	month, year int,
) (*usecase.MonthlyStatement, error) {
	txs, err := srv.ListByPeriod(ctx, userID, businessID, month, year)
	if err != nil {
		return nil, err
	}

	return &usecase.MonthlyStatement{Summary: ledger.Totals(txs), Transactions: txs}, nil
}

// owned loads a transaction and checks that the caller owns its business.
func (srv *transactionService) owned(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	txn, err := srv.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, notFound(err, repository.ErrTransactionNotFound, "failed to load transaction")
	}

	if _, err := srv.guard.business(ctx, userID, txn.BusinessID); err != nil {
		return nil, err
	}

	return txn, nil
}

func (srv *transactionService) list(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	txs, err := srv.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, dbError(err, "failed to list transactions")
	}

	return txs, nil
}
