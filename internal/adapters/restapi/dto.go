// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

import (
	"blockexplorer/pkg/explorer"
)

// WatchRequest defines the expected JSON body for the POST /v1/watchlist endpoint.
type WatchRequest struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Name     string `json:"name,omitempty"`
}

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CurrenciesResponse defines the structure for the GET /v1/currencies endpoint.
type CurrenciesResponse struct {
	Currencies []explorer.CurrencyInfo `json:"currencies"`
}

// WatchResponse defines the structure for the POST /v1/watchlist endpoint response (on success).
type WatchResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Wallet  explorer.Wallet `json:"wallet"`
}

// WatchlistResponse defines the structure for the GET /v1/watchlist endpoint.
type WatchlistResponse struct {
	Wallets []explorer.WatchedWallet `json:"wallets"`
}
