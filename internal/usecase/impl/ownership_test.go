package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
)

func TestOwnershipGuard_Business(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner is allowed", func(t *testing.T) {
		f := newTestFixture(t)
		guard := ownershipGuard{businesses: f.businesses, logger: f.logger}
		b := f.ownedBusiness(owner)

		got, err := guard.business(ctx, owner, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("foreign and missing look the same", func(t *testing.T) {
		f := newTestFixture(t)
		guard := ownershipGuard{businesses: f.businesses, logger: f.logger}
		foreign := f.ownedBusiness(uuid.New())
		missing := uuid.New()
		f.businesses.EXPECT().FindByID(mockAnyCtx, missing).Return(nil, repository.ErrBusinessNotFound)

		_, errForeign := guard.business(ctx, owner, foreign.ID)
		_, errMissing := guard.business(ctx, owner, missing)

		assert.ErrorIs(t, errForeign, domainerrors.ErrNotFound)
		assert.ErrorIs(t, errMissing, domainerrors.ErrNotFound)
		assert.Equal(t, errMissing, errForeign)
	})

	t.Run("nil caller is denied", func(t *testing.T) {
		f := newTestFixture(t)
		guard := ownershipGuard{businesses: f.businesses, logger: f.logger}
		b := &entity.Business{ID: uuid.New(), OwnerUserID: uuid.Nil}
		f.businesses.EXPECT().FindByID(mockAnyCtx, b.ID).Return(b, nil)

		_, err := guard.business(ctx, uuid.Nil, b.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("database failure is a 500", func(t *testing.T) {
		f := newTestFixture(t)
		guard := ownershipGuard{businesses: f.businesses, logger: f.logger}
		id := uuid.New()
		f.businesses.EXPECT().FindByID(mockAnyCtx, id).Return(nil, errors.New("connection reset"))

		_, err := guard.business(ctx, owner, id)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestDBError_KeepsAppErrors(t *testing.T) {
	assert.Equal(t, domainerrors.ErrEmailTaken, dbError(domainerrors.ErrEmailTaken, "x"))

	wrapped := dbError(errors.New("boom"), "failed")
	var appErr domainerrors.AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
