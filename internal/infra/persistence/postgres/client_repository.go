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

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	m := fromClientDomain(client)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = m.ID
	client.CreatedAt = m.CreatedAt
	client.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var m model.ClientModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(&m), nil
}

func (repo *clientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Client, error) {
	if len(ids) == 0 {
		return []*entity.Client{}, nil
	}

	var rows []model.ClientModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clients by ids")
	}

	return toClientsDomain(rows), nil
}

func (repo *clientRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Client, error) {
	var rows []model.ClientModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return toClientsDomain(rows), nil
}

func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":    client.Name,
			"phone":   client.Phone,
			"address": client.Address,
			"city":    client.City,
			"state":   client.State,
			"notes":   client.Notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client")
	}
	if result.RowsAffected == 0 {
		// The row vanished between the ownership check and the write.
		return repository.ErrClientNotFound
	}

	return nil
}

func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func toClientsDomain(rows []model.ClientModel) []*entity.Client {
	out := make([]*entity.Client, 0, len(rows))
	for i := range rows {
		out = append(out, toClientDomain(&rows[i]))
	}

	return out
}

func toClientDomain(m *model.ClientModel) *entity.Client {
	if m == nil {
		return nil
	}

	return &entity.Client{
		ID:         m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		Address:    m.Address,
		City:       m.City,
		State:      m.State,
		Notes:      m.Notes,
		BusinessID: m.BusinessID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromClientDomain(c *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		Notes:      c.Notes,
		BusinessID: c.BusinessID,
	}
}
