package repository

import (
	"context"

	"autonomax/internal/domain/repository"
)

// TxManager runs each unit of work straight against Factory without a real
// database transaction. Calls counts how many units ran.
type TxManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

func (m *TxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}

// RepositoryFactory hands out the configured repositories.
type RepositoryFactory struct {
	Users        repository.UserRepository
	Businesses   repository.BusinessRepository
	Clients      repository.ClientRepository
	Products     repository.ProductRepository
	Transactions repository.TransactionRepository
}

func (f *RepositoryFactory) NewUserRepository() repository.UserRepository { return f.Users }

func (f *RepositoryFactory) NewBusinessRepository() repository.BusinessRepository { return f.Businesses }

func (f *RepositoryFactory) NewClientRepository() repository.ClientRepository { return f.Clients }

func (f *RepositoryFactory) NewProductRepository() repository.ProductRepository { return f.Products }

func (f *RepositoryFactory) NewTransactionRepository() repository.TransactionRepository {
	return f.Transactions
}
