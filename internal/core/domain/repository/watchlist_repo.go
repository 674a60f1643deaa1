// Package repository defines interfaces for data storage and retrieval operations.
package repository

import (
	"context"

	"blockexplorer/internal/core/domain"
)

// WatchlistRepository defines the interface for managing the set of watched wallets.
type WatchlistRepository interface {
	// Add persists a watchlist entry. Adding an entry that already exists
	// replaces its display name.
	Add(ctx context.Context, wallet domain.WatchedWallet) error

	// Remove deletes the entry with the given identity key, if present.
	Remove(ctx context.Context, key string) error

	// Exists checks if an entry with the given identity key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// FindAll retrieves all watchlist entries.
	FindAll(ctx context.Context) ([]domain.WatchedWallet, error)
}
