package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/usecase"
)

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

type productService struct {
	productRepo repository.ProductRepository
	guard       ownershipGuard
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		guard:       ownershipGuard{businesses: params.BusinessRepo, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListByBusiness(ctx context.Context, userID, businessID uuid.UUID) ([]*entity.Product, error) {
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, dbError(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Create(
	ctx context.Context,
	userID, businessID uuid.UUID,
	input *usecase.ProductInput,
) (*entity.Product, error) {
	name, err := requiredName(input.Name, 1)
	if err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "preco", Rule: "gt", Param: "0"})
	}
	if !hasCents(input.Price) {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "preco", Rule: "decimals", Param: "2"})
	}
	if _, err := srv.guard.business(ctx, userID, businessID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        name,
		Description: optional(input.Description),
		Price:       input.Price,
		IsService:   input.IsService,
		BusinessID:  businessID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, dbError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()))

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return notFound(err, repository.ErrProductNotFound, "failed to load product")
	}
	if _, err := srv.guard.business(ctx, userID, product.BusinessID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return notFound(err, repository.ErrProductNotFound, "failed to delete product")
	}

	return nil
}
