package application

import (
	"fmt"

	"blockexplorer/internal/core/domain"
	"blockexplorer/pkg/blockcypher"
	"blockexplorer/pkg/explorer"
)

// coinUnits is the number of smallest units per coin; all supported chains use 8 decimals.
const coinUnits = 100_000_000

// displayNames holds the presentation names of the supported currencies.
var displayNames = map[blockcypher.Currency]string{
	blockcypher.Bitcoin:  "Bitcoin",
	blockcypher.Litecoin: "Litecoin",
	blockcypher.Dogecoin: "Dogecoin",
	blockcypher.Dash:     "Dash",
}

// mapCurrencyInfo converts a currency to its API display record.
func mapCurrencyInfo(c blockcypher.Currency) explorer.CurrencyInfo {
	return explorer.CurrencyInfo{
		ID:     c.String(),
		Symbol: c.Symbol(),
		Name:   displayNames[c],
	}
}

// mapWallet converts a client wallet snapshot to the public API wallet DTO.
func mapWallet(w *blockcypher.Wallet, c blockcypher.Currency) explorer.Wallet {
	txs := make([]explorer.Transaction, 0, len(w.Transactions))
	for i := range w.Transactions {
		txs = append(txs, mapTransaction(&w.Transactions[i], c))
	}

	return explorer.Wallet{
		Address:            w.Address,
		Currency:           c.String(),
		Balance:            w.Balance,
		BalanceDisplay:     formatAmount(w.Balance, c),
		TotalReceived:      w.TotalReceived,
		TotalSent:          w.TotalSent,
		UnconfirmedBalance: w.UnconfirmedBalance,
		FinalBalance:       w.FinalBalance,
		TxCount:            w.TxCount,
		Transactions:       txs,
	}
}

// mapTransaction converts a client transaction to the public API transaction DTO.
func mapTransaction(t *blockcypher.Transaction, c blockcypher.Currency) explorer.Transaction {
	return explorer.Transaction{
		Hash:          t.Hash,
		Currency:      c.String(),
		BlockHeight:   t.BlockHeight,
		Confirmations: t.Confirmations,
		Confidence:    t.Confidence,
		Total:         t.Total,
		TotalDisplay:  formatAmount(t.Total, c),
		Fees:          t.Fees,
		FeesDisplay:   formatAmount(t.Fees, c),
		Preference:    t.Preference,
		DoubleSpend:   t.DoubleSpend,
		Confirmed:     t.Confirmed.UTC().Format(blockcypher.TimeLayout),
		Received:      t.Received,
		InputCount:    len(t.Inputs),
		OutputCount:   len(t.Outputs),
	}
}

// mapWatchedWallet converts a watchlist entry to its API record.
func mapWatchedWallet(w domain.WatchedWallet) explorer.WatchedWallet {
	return explorer.WatchedWallet{
		Address:  w.Address(),
		Currency: w.Currency().String(),
		Name:     w.Name(),
	}
}

// formatAmount renders a smallest-unit amount as a coin quantity with the
// currency symbol, e.g. 1520000 -> "0.01520000 BTC".
func formatAmount(amount int64, c blockcypher.Currency) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%08d %s", sign, amount/coinUnits, amount%coinUnits, c.Symbol())
}
