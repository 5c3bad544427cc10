package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"gorm.io/gorm"
)

// txAttempts bounds how often a transaction aborted by a deadlock or a
// serialization failure is replayed.
const txAttempts = 3

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute runs fn in one transaction, replaying it when PostgreSQL aborted the
// transaction in favour of a concurrent one. fn must not have side effects
// outside the database.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= txAttempts; attempt++ {
		// gorm rolls back on error or panic and re-panics after the rollback.
		err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(txRepositories{tx: tx})
		})
		if err == nil || !isTxConflict(err) || ctx.Err() != nil {
			return err
		}
	}

	return err
}

// txRepositories builds repositories on the open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) ProductRepo() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

func (r txRepositories) PromotionRepo() repository.PromotionRepository {
	return NewPromotionRepository(r.tx)
}

func (r txRepositories) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(r.tx)
}

func (r txRepositories) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(r.tx)
}
