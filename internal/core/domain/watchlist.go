// Package domain defines the core domain models and business logic entities.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"blockexplorer/pkg/blockcypher"
)

// ErrInvalidWalletAddress indicates that a wallet address is empty or malformed.
var ErrInvalidWalletAddress = errors.New("invalid wallet address")

// ErrInvalidWalletName indicates that a watchlist display name is not usable.
var ErrInvalidWalletName = errors.New("invalid wallet name")

// DefaultWalletName is used when a watch request carries no display name.
const DefaultWalletName = "Wallet"

const maxWalletNameLength = 64

// WatchedWallet is one watchlist entry: an address on a specific chain plus a
// display name. It is a value object; identity is currency plus address.
type WatchedWallet struct {
	address  string
	currency blockcypher.Currency
	name     string
}

// NewWatchedWallet creates a WatchedWallet from raw caller input. The address
// is kept opaque beyond basic sanity checks; whether it exists on-chain is for
// the upstream API to decide.
func NewWatchedWallet(currency blockcypher.Currency, address, name string) (WatchedWallet, error) {
	cleanAddr := strings.TrimSpace(address)
	if cleanAddr == "" {
		return WatchedWallet{}, fmt.Errorf("%w: address is empty", ErrInvalidWalletAddress)
	}
	if strings.ContainsAny(cleanAddr, " \t\n") {
		return WatchedWallet{}, fmt.Errorf("%w: address contains whitespace", ErrInvalidWalletAddress)
	}
	if !currency.Valid() {
		return WatchedWallet{}, fmt.Errorf("%w: %q", blockcypher.ErrUnsupportedCurrency, currency)
	}

	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		cleanName = DefaultWalletName
	}
	if len(cleanName) > maxWalletNameLength {
		return WatchedWallet{}, fmt.Errorf("%w: name longer than %d characters", ErrInvalidWalletName, maxWalletNameLength)
	}

	return WatchedWallet{
		address:  cleanAddr,
		currency: currency,
		name:     cleanName,
	}, nil
}

// Address returns the wallet address.
func (w WatchedWallet) Address() string {
	return w.address
}

// Currency returns the chain the wallet lives on.
func (w WatchedWallet) Currency() blockcypher.Currency {
	return w.currency
}

// Name returns the display name of the entry.
func (w WatchedWallet) Name() string {
	return w.name
}

// Key returns the identity key of the entry within the watchlist.
func (w WatchedWallet) Key() string {
	return string(w.currency) + ":" + w.address
}

// IsZero checks if the WatchedWallet is the zero value.
func (w WatchedWallet) IsZero() bool {
	return w.address == ""
}

// Equals checks if two entries identify the same wallet, ignoring the name.
func (w WatchedWallet) Equals(other WatchedWallet) bool {
	return w.currency == other.currency && w.address == other.address
}
