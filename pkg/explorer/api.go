// Package explorer defines the public API contracts for the blockchain explorer service.
package explorer

import (
	"context"
)

// CurrencyInfo describes one supported blockchain for display purposes.
type CurrencyInfo struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Wallet is the API representation of a wallet snapshot. Raw amounts are
// integers in the smallest currency unit; the *_display fields carry the
// formatted coin amounts.
type Wallet struct {
	Address            string        `json:"address"`
	Currency           string        `json:"currency"`
	Balance            int64         `json:"balance"`
	BalanceDisplay     string        `json:"balance_display"`
	TotalReceived      int64         `json:"total_received"`
	TotalSent          int64         `json:"total_sent"`
	UnconfirmedBalance int64         `json:"unconfirmed_balance"`
	FinalBalance       int64         `json:"final_balance"`
	TxCount            int           `json:"n_tx"`
	Transactions       []Transaction `json:"transactions"`
}

// Transaction is the API representation of one transaction.
type Transaction struct {
	Hash          string `json:"hash"`
	Currency      string `json:"currency"`
	BlockHeight   int64  `json:"block_height"`
	Confirmations int64  `json:"confirmations"`
	Confidence    int    `json:"confidence"`
	Total         int64  `json:"total"`
	TotalDisplay  string `json:"total_display"`
	Fees          int64  `json:"fees"`
	FeesDisplay   string `json:"fees_display"`
	Preference    string `json:"preference"`
	DoubleSpend   bool   `json:"double_spend"`
	Confirmed     string `json:"confirmed"`
	Received      string `json:"received"`
	InputCount    int    `json:"input_count"`
	OutputCount   int    `json:"output_count"`
}

// WatchedWallet is one entry of the watchlist.
type WatchedWallet struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
	Name     string `json:"name"`
}

// Explorer defines the public interface of the blockchain explorer service.
type Explorer interface {
	// Currencies lists the supported blockchains.
	Currencies(ctx context.Context) []CurrencyInfo

	// GetWallet fetches a live wallet snapshot for an address on the given currency.
	GetWallet(ctx context.Context, currency, address string) (Wallet, error)

	// GetTransaction fetches one transaction by hash on the given currency.
	GetTransaction(ctx context.Context, currency, hash string) (Transaction, error)

	// Watch verifies that a wallet can be resolved and adds it to the watchlist.
	Watch(ctx context.Context, currency, address, name string) (Wallet, error)

	// Unwatch removes a wallet from the watchlist.
	Unwatch(ctx context.Context, currency, address string) error

	// Watchlist lists all watched wallets.
	Watchlist(ctx context.Context) ([]WatchedWallet, error)
}
