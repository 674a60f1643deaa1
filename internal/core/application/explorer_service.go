// Package application contains the core application service logic for the blockchain explorer.
package application

import (
	"context"
	"errors"
	"fmt"

	"blockexplorer/internal/core/domain"
	"blockexplorer/internal/core/domain/client"
	"blockexplorer/internal/core/domain/repository"
	"blockexplorer/internal/logger"
	"blockexplorer/pkg/blockcypher"
	"blockexplorer/pkg/explorer"
)

// ExplorerServiceImpl implements the explorer.Explorer interface on top of the
// data client and the watchlist repository.
type ExplorerServiceImpl struct {
	watchlistRepo repository.WatchlistRepository
	dataClient    client.ExplorerClient
	logger        logger.AppLogger
}

// Compile-time check to ensure ExplorerServiceImpl implements explorer.Explorer
var _ explorer.Explorer = (*ExplorerServiceImpl)(nil)

// NewExplorerService creates a new instance of ExplorerServiceImpl.
func NewExplorerService(
	watchlistRepo repository.WatchlistRepository,
	dataClient client.ExplorerClient,
	appLogger logger.AppLogger,
) (*ExplorerServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewExplorerService: appLogger is nil")
	}
	if watchlistRepo == nil {
		appLogger.Error("NewExplorerService: watchlistRepo is nil")
		return nil, errors.New("NewExplorerService: watchlistRepo is nil")
	}
	if dataClient == nil {
		appLogger.Error("NewExplorerService: dataClient is nil")
		return nil, errors.New("NewExplorerService: dataClient is nil")
	}

	return &ExplorerServiceImpl{
		watchlistRepo: watchlistRepo,
		dataClient:    dataClient,
		logger:        appLogger,
	}, nil
}

// Currencies lists the supported blockchains with their display metadata.
func (s *ExplorerServiceImpl) Currencies(_ context.Context) []explorer.CurrencyInfo {
	currencies := blockcypher.Currencies()
	infos := make([]explorer.CurrencyInfo, 0, len(currencies))
	for _, c := range currencies {
		infos = append(infos, mapCurrencyInfo(c))
	}
	return infos
}

// GetWallet fetches a live wallet snapshot for an address on the given currency.
func (s *ExplorerServiceImpl) GetWallet(ctx context.Context, currency, address string) (explorer.Wallet, error) {
	cur, err := blockcypher.ParseCurrency(currency)
	if err != nil {
		return explorer.Wallet{}, fmt.Errorf("currency validation failed: %w", err)
	}

	walletLogger := s.logger.With("currency", cur.String(), "address", address)

	wallet, err := s.dataClient.FetchWallet(ctx, address, cur)
	if err != nil {
		walletLogger.Warn("Wallet fetch failed", "error", err)
		return explorer.Wallet{}, fmt.Errorf("wallet fetch failed: %w", err)
	}

	s.reportCountMismatches(walletLogger, wallet.Transactions)
	walletLogger.Info("Wallet fetched", "tx_count", len(wallet.Transactions))

	return mapWallet(wallet, cur), nil
}

// GetTransaction fetches one transaction by hash on the given currency.
func (s *ExplorerServiceImpl) GetTransaction(ctx context.Context, currency, hash string) (explorer.Transaction, error) {
	cur, err := blockcypher.ParseCurrency(currency)
	if err != nil {
		return explorer.Transaction{}, fmt.Errorf("currency validation failed: %w", err)
	}

	txLogger := s.logger.With("currency", cur.String(), "hash", hash)

	tx, err := s.dataClient.FetchTransaction(ctx, hash, cur)
	if err != nil {
		txLogger.Warn("Transaction fetch failed", "error", err)
		return explorer.Transaction{}, fmt.Errorf("transaction fetch failed: %w", err)
	}

	s.reportCountMismatches(txLogger, []blockcypher.Transaction{*tx})
	txLogger.Info("Transaction fetched", "confirmations", tx.Confirmations)

	return mapTransaction(tx, cur), nil
}

// Watch verifies that the wallet resolves on the upstream API and then adds it
// to the watchlist. A wallet the API cannot resolve is never added.
func (s *ExplorerServiceImpl) Watch(ctx context.Context, currency, address, name string) (explorer.Wallet, error) {
	cur, err := blockcypher.ParseCurrency(currency)
	if err != nil {
		return explorer.Wallet{}, fmt.Errorf("currency validation failed: %w", err)
	}

	entry, err := domain.NewWatchedWallet(cur, address, name)
	if err != nil {
		return explorer.Wallet{}, fmt.Errorf("watchlist entry validation failed: %w", err)
	}

	entryLogger := s.logger.With("currency", cur.String(), "address", entry.Address())

	wallet, err := s.dataClient.FetchWallet(ctx, entry.Address(), cur)
	if err != nil {
		entryLogger.Warn("Refusing to watch wallet that did not resolve", "error", err)
		return explorer.Wallet{}, fmt.Errorf("wallet fetch failed: %w", err)
	}

	if err := s.watchlistRepo.Add(ctx, entry); err != nil {
		entryLogger.Error("Failed to add wallet to watchlist", "error", err)
		return explorer.Wallet{}, fmt.Errorf("failed to add wallet to watchlist: %w", err)
	}

	entryLogger.Info("Wallet added to watchlist", "name", entry.Name())
	return mapWallet(wallet, cur), nil
}

// Unwatch removes a wallet from the watchlist.
func (s *ExplorerServiceImpl) Unwatch(ctx context.Context, currency, address string) error {
	cur, err := blockcypher.ParseCurrency(currency)
	if err != nil {
		return fmt.Errorf("currency validation failed: %w", err)
	}

	entry, err := domain.NewWatchedWallet(cur, address, "")
	if err != nil {
		return fmt.Errorf("watchlist entry validation failed: %w", err)
	}

	if err := s.watchlistRepo.Remove(ctx, entry.Key()); err != nil {
		s.logger.Error("Failed to remove wallet from watchlist", "key", entry.Key(), "error", err)
		return fmt.Errorf("failed to remove wallet from watchlist: %w", err)
	}

	s.logger.Info("Wallet removed from watchlist", "key", entry.Key())
	return nil
}

// Watchlist lists all watched wallets.
func (s *ExplorerServiceImpl) Watchlist(ctx context.Context) ([]explorer.WatchedWallet, error) {
	entries, err := s.watchlistRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list watchlist", "error", err)
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}

	result := make([]explorer.WatchedWallet, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapWatchedWallet(e))
	}
	return result, nil
}

// reportCountMismatches logs transactions whose advertised input/output counts
// disagree with the embedded slices. Such documents are served as-is.
func (s *ExplorerServiceImpl) reportCountMismatches(l logger.AppLogger, txs []blockcypher.Transaction) {
	for i := range txs {
		if !txs[i].CountsConsistent() {
			l.Warn("Transaction input/output counts disagree with document",
				"hash", txs[i].Hash,
				"vin_sz", txs[i].VinSize,
				"inputs", len(txs[i].Inputs),
				"vout_sz", txs[i].VoutSize,
				"outputs", len(txs[i].Outputs),
			)
		}
	}
}
