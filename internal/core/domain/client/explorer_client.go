// Package client defines interfaces for external service clients, such as the blockchain data API client.
package client

import (
	"context"

	"blockexplorer/pkg/blockcypher"
)

// ExplorerClient defines the interface for fetching blockchain data from the upstream API.
type ExplorerClient interface {
	// FetchWallet retrieves the full wallet snapshot for an address on the given chain.
	FetchWallet(ctx context.Context, address string, currency blockcypher.Currency) (*blockcypher.Wallet, error)

	// FetchTransaction retrieves one transaction by hash on the given chain.
	FetchTransaction(ctx context.Context, hash string, currency blockcypher.Currency) (*blockcypher.Transaction, error)
}
