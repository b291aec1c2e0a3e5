package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	"autonomax/internal/domain/repository"
	"autonomax/internal/usecase"
)

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TxManager
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

type businessService struct {
	txManager    repository.TxManager
	businessRepo repository.BusinessRepository
	guard        ownershipGuard
	logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		guard:        ownershipGuard{businesses: params.BusinessRepo, logger: params.Logger},
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, dbError(err, "failed to list businesses")
	}

	return businesses, nil
}

func (srv *businessService) Get(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error) {
	return srv.guard.business(ctx, userID, businessID)
}

func (srv *businessService) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.BusinessInput,
) (*entity.Business, error) {
	name, err := requiredName(input.Name, 1)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		Name:        name,
		Document:    optional(input.Document),
		OwnerUserID: userID,
	}
	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, dbError(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created",
		slog.String("business_id", business.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return business, nil
}

func (srv *businessService) Update(
	ctx context.Context,
	userID, businessID uuid.UUID,
	input *usecase.BusinessInput,
) (*entity.Business, error) {
	name, err := requiredName(input.Name, 1)
	if err != nil {
		return nil, err
	}
	business, err := srv.guard.business(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	business.Name = name
	business.Document = optional(input.Document)
	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, notFound(err, repository.ErrBusinessNotFound, "failed to update business")
	}

	return business, nil
}

// Delete removes the business along with its clients, products and transactions.
func (srv *businessService) Delete(ctx context.Context, userID, businessID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		businesses := factory.NewBusinessRepository()
		if _, err := srv.guard.businessIn(ctx, businesses, userID, businessID); err != nil {
			return err
		}

		if err := businesses.Delete(ctx, businessID); err != nil {
			return notFound(err, repository.ErrBusinessNotFound, "failed to delete business")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Business deleted", slog.String("business_id", businessID.String()))

	return nil
}
