// Package mock_repository provides a testify mock for the repository.WatchlistRepository interface.
package mock_repository

import (
	"context"

	"blockexplorer/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// WatchlistRepository is a mock implementation of repository.WatchlistRepository.
type WatchlistRepository struct {
	mock.Mock
}

// testingT is the subset of *testing.T the mock constructor needs.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewWatchlistRepository creates a new mock and registers expectation assertions as a test cleanup.
func NewWatchlistRepository(t testingT) *WatchlistRepository {
	m := &WatchlistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Add provides a mock function.
func (m *WatchlistRepository) Add(ctx context.Context, wallet domain.WatchedWallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

// Remove provides a mock function.
func (m *WatchlistRepository) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Exists provides a mock function.
func (m *WatchlistRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// FindAll provides a mock function.
func (m *WatchlistRepository) FindAll(ctx context.Context) ([]domain.WatchedWallet, error) {
	args := m.Called(ctx)

	var wallets []domain.WatchedWallet
	if args.Get(0) != nil {
		wallets = args.Get(0).([]domain.WatchedWallet)
	}
	return wallets, args.Error(1)
}
