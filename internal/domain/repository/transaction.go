package repository

import "context"

// TransactionManager runs multi-step use cases atomically without exposing GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction. A returned error rolls the
	// transaction back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
	PromotionRepo() PromotionRepository
	ReviewRepo() ReviewRepository
	NotificationRepo() NotificationRepository
}
