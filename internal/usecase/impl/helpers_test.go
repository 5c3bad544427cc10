package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:          &config.AuthConfig{BcryptCost: 4},
		Pagination:    &config.PaginationConfig{DefaultElementsPerPage: 10, MaxElementsPerPage: 50},
		Order:         &config.OrderConfig{CodeMaxAttempts: 3},
		Promotion:     &config.PromotionConfig{MaxItemsPerRequest: 100},
		SearchHistory: &config.SearchHistoryConfig{Limit: 5},
	}
}

// expectTx makes the transaction manager run the callback against factory
// and return whatever the callback returns.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
