package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	"autonomax/internal/domain/repository"
	"autonomax/internal/ledger"
	"autonomax/internal/usecase"
)

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	BusinessRepo    repository.BusinessRepository
	ClientRepo      repository.ClientRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

type clientService struct {
	clientRepo      repository.ClientRepository
	transactionRepo repository.TransactionRepository
	guard           ownershipGuard
	logger          *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		clientRepo:      params.ClientRepo,
		transactionRepo: params.TransactionRepo,
		guard:           ownershipGuard{businesses: params.BusinessRepo, logger: params.Logger},
		logger:          params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *clientService) ListByBusiness(ctx context.Context, userID, businessID uuid.UUID) ([]*entity.Client, error) {
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	clients, err := srv.clientRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, dbError(err, "failed to list clients")
	}

	return clients, nil
}

func (srv *clientService) Get(ctx context.Context, userID, clientID uuid.UUID) (*entity.Client, error) {
	return srv.owned(ctx, userID, clientID)
}

func (srv *clientService) Create(
	ctx context.Context,
	userID, businessID uuid.UUID,
	input *usecase.ClientInput,
) (*entity.Client, error) {
	if err := checkClientInput(input); err != nil {
		return nil, err
	}
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	client := &entity.Client{BusinessID: businessID}
	applyClientInput(client, input)
	if err := srv.clientRepo.Create(ctx, client); err != nil {
		return nil, dbError(err, "failed to create client")
	}

	srv.log(ctx).Info("Client created",
		slog.String("client_id", client.ID.String()),
		slog.String("business_id", businessID.String()),
	)

	return client, nil
}

// Update replaces the client's details. The owning business never changes.
func (srv *clientService) Update(
	ctx context.Context,
	userID, clientID uuid.UUID,
	input *usecase.ClientInput,
) (*entity.Client, error) {
	if err := checkClientInput(input); err != nil {
		return nil, err
	}
	client, err := srv.owned(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	applyClientInput(client, input)
	if err := srv.clientRepo.Update(ctx, client); err != nil {
		return nil, notFound(err, repository.ErrClientNotFound, "failed to update client")
	}

	return client, nil
}

// Delete removes the client. Their transactions stay, without a client.
func (srv *clientService) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	if _, err := srv.owned(ctx, userID, clientID); err != nil {
		return err
	}

	if err := srv.clientRepo.Delete(ctx, clientID); err != nil {
		return notFound(err, repository.ErrClientNotFound, "failed to delete client")
	}

	return nil
}

func (srv *clientService) Ranking(ctx context.Context, userID, businessID uuid.UUID) ([]usecase.ClientRanking, error) {
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	txs, err := srv.transactionRepo.List(ctx, repository.TransactionFilter{BusinessID: businessID})
	if err != nil {
		return nil, dbError(err, "failed to list transactions")
	}

	return rankClients(ctx, srv.clientRepo, txs, ledger.TopClients)
}

// owned loads a client and checks that the caller owns its business.
func (srv *clientService) owned(ctx context.Context, userID, clientID uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, notFound(err, repository.ErrClientNotFound, "failed to load client")
	}

	if _, err := srv.guard.business(ctx, userID, client.BusinessID); err != nil {
		return nil, err
	}

	return client, nil
}

func checkClientInput(input *usecase.ClientInput) error {
	_, err := requiredName(input.Name, 1)

	return err
}

func applyClientInput(client *entity.Client, input *usecase.ClientInput) {
	client.Name = strings.TrimSpace(input.Name)
	client.Phone = optional(input.Phone)
	client.Address = optional(input.Address)
	client.City = optional(input.City)
	client.State = optionalUpper(input.State)
	client.Notes = optional(input.Notes)
}

// rankClients ranks clients by income and attaches their names. Ranked
// clients that were deleted meanwhile are dropped.
func rankClients(
	ctx context.Context,
	clients repository.ClientRepository,
	txs []*entity.Transaction,
	limit int,
) ([]usecase.ClientRanking, error) {
	ranks := ledger.RankClients(txs, limit)
	if len(ranks) == 0 {
		return []usecase.ClientRanking{}, nil
	}

	ids := make([]uuid.UUID, 0, len(ranks))
	for _, r := range ranks {
		ids = append(ids, r.ClientID)
	}
	found, err := clients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dbError(err, "failed to load ranked clients")
	}
	names := make(map[uuid.UUID]string, len(found))
	for _, c := range found {
		names[c.ID] = c.Name
	}

	out := make([]usecase.ClientRanking, 0, len(ranks))
	for _, r := range ranks {
		name, ok := names[r.ClientID]
		if !ok {
			continue
		}
		out = append(out, usecase.ClientRanking{
			ClientID: r.ClientID,
			Name:     name,
			Total:    r.Total,
			Count:    r.Count,
		})
	}

	return out, nil
}
