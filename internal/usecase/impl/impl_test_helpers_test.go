package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tastebook/config"
	"tastebook/internal/domain/repository"
	mockRepo "tastebook/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxPageSize int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{MaxPageSize: maxPageSize},
	}
}

// newPassthroughTx builds a TransactionManager mock that runs the closure
// against the given factory, standing in for a committed transaction.
func newPassthroughTx(t *testing.T, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
