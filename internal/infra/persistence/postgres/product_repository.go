package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/infra/persistence/model"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		IsService:   product.IsService,
		BusinessID:  product.BusinessID,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return repository.ErrBusinessNotFound
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("preco")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&m), nil
}

func (repo *productRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, toProductDomain(&rows[i]))
	}

	return out, nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsService:   m.IsService,
		BusinessID:  m.BusinessID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
