package repository

import "context"

// TxManager runs a unit of work inside one database transaction.
type TxManager interface {
	// Execute runs fn in a transaction. A returned error or panic rolls back;
	// otherwise the transaction commits. Repositories obtained from the
	// factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewBusinessRepository() BusinessRepository
	NewClientRepository() ClientRepository
	NewProductRepository() ProductRepository
	NewTransactionRepository() TransactionRepository
}
