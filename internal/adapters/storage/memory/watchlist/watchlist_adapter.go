// Package watchlist provides an in-memory implementation of the WatchlistRepository interface.
package watchlist

import (
	"context"
	"sort"
	"sync"

	"blockexplorer/internal/core/domain"
	"blockexplorer/internal/core/domain/repository"
)

// InMemoryWatchlistRepo implements the WatchlistRepository interface using an in-memory map.
type InMemoryWatchlistRepo struct {
	mu      sync.RWMutex
	wallets map[string]domain.WatchedWallet
}

// Compile-time check to ensure InMemoryWatchlistRepo implements repository.WatchlistRepository
var _ repository.WatchlistRepository = (*InMemoryWatchlistRepo)(nil)

// NewInMemoryWatchlistRepo creates a new in-memory watchlist repository.
func NewInMemoryWatchlistRepo() *InMemoryWatchlistRepo {
	return &InMemoryWatchlistRepo{
		wallets: make(map[string]domain.WatchedWallet),
	}
}

// Add persists a watchlist entry, replacing any existing entry with the same key.
func (r *InMemoryWatchlistRepo) Add(_ context.Context, wallet domain.WatchedWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wallets[wallet.Key()] = wallet
	return nil
}

// Remove deletes the entry with the given identity key, if present.
func (r *InMemoryWatchlistRepo) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wallets, key)
	return nil
}

// Exists checks if an entry with the given identity key is present.
func (r *InMemoryWatchlistRepo) Exists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.wallets[key]
	return exists, nil
}

// FindAll retrieves all watchlist entries sorted by identity key for a stable listing order.
func (r *InMemoryWatchlistRepo) FindAll(_ context.Context) ([]domain.WatchedWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	walletList := make([]domain.WatchedWallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		walletList = append(walletList, w)
	}
	sort.Slice(walletList, func(i, j int) bool {
		return walletList[i].Key() < walletList[j].Key()
	})
	return walletList, nil
}
