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

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	m := fromBusinessDomain(business)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = m.ID
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var m model.BusinessModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&m), nil
}

func (repo *businessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var rows []model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Order("name ASC").Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	out := make([]*entity.Business, 0, len(rows))
	for i := range rows {
		out = append(out, toBusinessDomain(&rows[i]))
	}

	return out, nil
}

// Update writes name and document. Ownership never changes.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":     business.Name,
			"document": business.Document,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BusinessModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func toBusinessDomain(m *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:          m.ID,
		Name:        m.Name,
		Document:    m.Document,
		OwnerUserID: m.OwnerUserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromBusinessDomain(b *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:          b.ID,
		Name:        b.Name,
		Document:    b.Document,
		OwnerUserID: b.OwnerUserID,
	}
}
