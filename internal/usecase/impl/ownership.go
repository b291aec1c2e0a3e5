package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/authz"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/errors"
)

// ownershipGuard resolves a business-scoped resource and checks that the
// caller owns its business. A missing resource and a foreign one both come
// back as domainerrors.ErrNotFound.
type ownershipGuard struct {
	businesses repository.BusinessRepository
	logger     *slog.Logger
}

func (g ownershipGuard) business(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error) {
	return g.businessIn(ctx, g.businesses, userID, businessID)
}

// businessIn runs the check against repo, which may be bound to a transaction.
func (g ownershipGuard) businessIn(
	ctx context.Context,
	repo repository.BusinessRepository,
	userID, businessID uuid.UUID,
) (*entity.Business, error) {
	business, err := repo.FindByID(ctx, businessID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, dbError(err, "failed to load business")
	}

	if decision := authz.Authorize(userID, business.OwnerUserID); decision != authz.Allow {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Warn("Ownership check denied",
			slog.String("user_id", userID.String()),
			slog.String("business_id", businessID.String()),
			slog.String("decision", decision.String()),
		)

		return nil, domainerrors.ErrNotFound
	}

	return business, nil
}

// notFound maps a repository not-found sentinel to the uniform 404.
func notFound(err, sentinel error, details string) error {
	if errors.Is(err, sentinel) {
		return domainerrors.ErrNotFound
	}

	return dbError(err, details)
}

// dbError wraps err as a database failure unless it already is an AppError.
func dbError(err error, details string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
