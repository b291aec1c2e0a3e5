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

// transactionRepository persists ledger entries. Items keep their insertion
// order through the position column.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts the transaction row and its items. Run it inside
// TxManager.Execute so both inserts commit together.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	m := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Omit("Client").Create(m).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrNotFound.WithDetails("negocio ou cliente inexistente")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("valor, tipo ou quantidade")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = m.ID
	txn.CreatedAt = m.CreatedAt
	for i := range txn.Items {
		txn.Items[i].ID = m.Items[i].ID
		txn.Items[i].TransactionID = m.ID
	}

	return nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var m model.TransactionModel
	if err := repo.preload(repo.db.WithContext(ctx)).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&m), nil
}

func (repo *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := repo.preload(repo.db.WithContext(ctx)).Where("business_id = ?", filter.BusinessID)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("occurred_at < ?", filter.To.UTC())
	}

	var rows []model.TransactionModel
	if err := query.Order("occurred_at DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, toTransactionDomain(&rows[i]))
	}

	return out, nil
}

// Delete removes the transaction. line_items rows go with it via ON DELETE CASCADE.
func (repo *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func (repo *transactionRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func toTransactionDomain(m *model.TransactionModel) *entity.Transaction {
	kind, ok := entity.ParseKind(m.Kind)
	if !ok {
		kind = entity.Kind(m.Kind)
	}

	items := make([]entity.LineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entity.LineItem{
			ID:            it.ID,
			Name:          it.Name,
			Quantity:      it.Quantity,
			TransactionID: it.TransactionID,
		})
	}

	return &entity.Transaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        kind,
		Date:        m.OccurredAt.UTC(),
		BusinessID:  m.BusinessID,
		ClientID:    m.ClientID,
		Client:      toClientDomain(m.Client),
		Items:       items,
		CreatedAt:   m.CreatedAt,
	}
}

func fromTransactionDomain(t *entity.Transaction) *model.TransactionModel {
	items := make([]model.LineItemModel, 0, len(t.Items))
	for i, it := range t.Items {
		items = append(items, model.LineItemModel{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Position: i,
		})
	}

	return &model.TransactionModel{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Kind:        t.Kind.Label(),
		OccurredAt:  t.Date.UTC(),
		BusinessID:  t.BusinessID,
		ClientID:    t.ClientID,
		Items:       items,
	}
}
