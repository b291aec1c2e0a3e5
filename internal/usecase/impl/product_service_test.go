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

func newTestProductService(f *testFixture) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{
		BusinessRepo: f.businesses,
		ProductRepo:  f.products,
		Logger:       f.logger,
	})
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("creates a service", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestProductService(f)
		b := f.ownedBusiness(owner)

		f.products.EXPECT().
			Create(mockAnyCtx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.BusinessID == b.ID && p.IsService && p.Name == "Corte"
			})).
			Return(nil)

		p, err := srv.Create(ctx, owner, b.ID, &usecase.ProductInput{Name: "Corte ", Price: money("45.00"), IsService: true})
		require.NoError(t, err)
		assert.True(t, p.Price.Equal(money("45")))
	})

	t.Run("non-positive price", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestProductService(f)

		_, err := srv.Create(ctx, owner, uuid.New(), &usecase.ProductInput{Name: "Brinde", Price: money("0")})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("price finer than cents", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestProductService(f)

		_, err := srv.Create(ctx, owner, uuid.New(), &usecase.ProductInput{Name: "Brinde", Price: money("10.005")})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []domainerrors.FieldError{{Field: "preco", Rule: "decimals", Param: "2"}}, validationErr.Fields())
		f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("trailing zeros are exact", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestProductService(f)
		b := f.ownedBusiness(owner)

		f.products.EXPECT().Create(mockAnyCtx, mock.Anything).Return(nil)

		_, err := srv.Create(ctx, owner, b.ID, &usecase.ProductInput{Name: "Bolo", Price: money("30.500")})
		require.NoError(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestProductService(f)

		_, err := srv.Create(ctx, owner, uuid.New(), &usecase.ProductInput{Name: "   ", Price: money("5")})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestProductService_DeleteForeign(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestProductService(f)
	b := f.ownedBusiness(uuid.New())
	p := &entity.Product{ID: uuid.New(), BusinessID: b.ID}

	f.products.EXPECT().FindByID(mockAnyCtx, p.ID).Return(p, nil)

	err := srv.Delete(context.Background(), uuid.New(), p.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
